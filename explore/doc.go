// Package explore runs the landscape-exploration loop: ask the suggestion
// chain for a pair, refine it through the cycle manager, report one unit
// of progress, repeat. The loop has no iteration cap and no cancellation;
// it ends exactly when the chain abstains (every engine exhausted), and
// any cycle-manager error propagates immediately.
//
// Progress reporting is an injected Observer with a no-op default — never
// a hard dependency of the loop. SlogObserver logs one structured line per
// refined pair for runs that want visibility.
package explore
