// Package suggest decides which minima pair the exploration refines next.
//
// An Engine is a heuristic over the landscape graph: asked with the graph
// and the node-value / edge-weight attribute keys, it either proposes one
// unordered pair of distinct minima or abstains. Engines compose into a
// priority chain — the first engine that proposes wins, and only when
// every engine abstains does the chain signal exhaustion, which is the
// exploration loop's sole termination condition.
//
// Shipped engines:
//
//	Disconnected - samples a pair across two different connected
//	               components (seeded, deterministic); abstains once the
//	               graph is connected.
//	MST          - reduces the multigraph by the weight key, builds the
//	               minimum spanning tree of the result and proposes the
//	               MST edge with the worst saddle (adjusted by the
//	               endpoints' node values) that still has refinement
//	               budget left; abstains when every MST edge is fully
//	               refined.
//
// Errors:
//
//	ErrUnknownEngine - FromConfig met an unregistered engine kind.
package suggest
