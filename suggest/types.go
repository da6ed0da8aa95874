package suggest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/landscape"
)

// ErrUnknownEngine indicates a configured engine kind that is not
// registered. This is a fatal configuration error.
var ErrUnknownEngine = errors.New("suggest: unknown engine kind")

// Engine proposes the next minima pair to refine, or abstains.
//
// valueKey names the node-analysis attribute holding a minimum's value;
// weightKey names the cycle-analysis attribute ranking cycles. A proposal
// is always a pair of distinct node IDs; ok=false is abstention and
// carries no pair.
type Engine interface {
	Suggest(g *landscape.Graph, valueKey, weightKey string) (m1, m2 int, ok bool)
}

// Chain composes engines by priority: the first proposal wins.
type Chain []Engine

// NewChain builds a priority chain over the given engines.
func NewChain(engines ...Engine) Chain { return Chain(engines) }

// Suggest asks each engine in order and returns the first proposal. When
// every engine abstains the chain abstains — the exhaustion sentinel that
// terminates exploration.
func (c Chain) Suggest(g *landscape.Graph, valueKey, weightKey string) (int, int, bool) {
	for _, engine := range c {
		if m1, m2, ok := engine.Suggest(g, valueKey, weightKey); ok {
			return m1, m2, true
		}
	}

	return 0, 0, false
}

// FromConfig assembles the engine chain described by a validated
// exploration config.
func FromConfig(engines []config.Engine) (Chain, error) {
	chain := make(Chain, 0, len(engines))
	for i, e := range engines {
		switch e.Kind {
		case "disconnected":
			chain = append(chain, NewDisconnected(e.Seed))
		case "mst":
			chain = append(chain, NewMST(e.MaxRefinements))
		default:
			return nil, fmt.Errorf("%w: engines[%d] %q", ErrUnknownEngine, i, e.Kind)
		}
	}

	return chain, nil
}
