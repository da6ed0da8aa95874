// Command autoneb maps the connectivity of the built-in analytic energy
// landscape: `autoneb explore` discovers minima and refines NEB paths
// between them, `autoneb reduce` collapses a saved multigraph to its best
// simple graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "autoneb",
		Short:         "Map the connectivity of a multi-minima energy landscape",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newExploreCmd(), newReduceCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "autoneb:", err)
		os.Exit(1)
	}
}
