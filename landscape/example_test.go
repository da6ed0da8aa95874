package landscape_test

import (
	"fmt"

	"github.com/katalvlaran/autoneb/landscape"
)

// ExampleToSimpleGraph reduces a pair with three refinement cycles to its
// best connection: the lowest saddle wins, first-inserted on ties.
func ExampleToSimpleGraph() {
	g := landscape.NewGraph()
	a := g.AddMinimum([]float64{0}, map[string]float64{"train_loss": -1})
	b := g.AddMinimum([]float64{3}, map[string]float64{"train_loss": -2})

	weights := []float64{5.0, 2.0, 2.0}
	for i, w := range weights {
		images := 2 + i
		path := make([][]float64, images)
		dists := make([]float64, images-1)
		for j := range path {
			path[j] = []float64{3 * float64(j) / float64(images-1)}
		}
		for j := range dists {
			dists[j] = 3 / float64(images-1)
		}
		cycle := &landscape.Cycle{
			PathCoords:      path,
			TargetDistances: dists,
			Analysis:        map[string]float64{"saddle_loss": w},
		}
		if err := g.AddCycle(a, b, i+1, cycle); err != nil {
			fmt.Println("insert failed:", err)

			return
		}
	}

	simple, err := landscape.ToSimpleGraph(g, "saddle_loss")
	if err != nil {
		fmt.Println("reduce failed:", err)

		return
	}
	edge := simple.Edges[landscape.NewPair(a, b)]
	fmt.Printf("selected cycle %d with saddle_loss=%.1f\n", edge.CycleIdx, edge.Weight)

	// Output:
	// selected cycle 2 with saddle_loss=2.0
}
