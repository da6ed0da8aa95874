package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/explore"
	"github.com/katalvlaran/autoneb/landscape"
	"github.com/katalvlaran/autoneb/minimize"
	"github.com/katalvlaran/autoneb/model"
	"github.com/katalvlaran/autoneb/suggest"
)

func newExploreCmd() *cobra.Command {
	var (
		configPath string
		outPath    string
		minima     int
		dim        int
		wells      int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Discover minima on the built-in surface and refine paths between them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			engines, err := suggest.FromConfig(cfg.Engines)
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			log := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run_id", runID)

			surface := model.NewSurface(dim, wells, seed)
			g := landscape.NewGraph()

			// The finder config of the first cycle doubles as the
			// minimum-search config; minima search and path relaxation
			// share the optimizer registry.
			findCfg := cfg.AutoNEB.Cycles[0].Optim
			for i := 0; i < minima; i++ {
				m, err := minimize.FindMinimum(surface, findCfg)
				if err != nil {
					return err
				}
				id := g.AddMinimum(m.Coords, m.Analysis)
				log.Info("minimum found", "id", id, "loss", m.Analysis["train_loss"])
			}

			obs := &explore.SlogObserver{Log: log}
			if err = explore.Run(g, surface, cfg, engines, obs); err != nil {
				return err
			}

			if err = landscape.SaveFile(outPath, g); err != nil {
				return err
			}
			log.Info("exploration finished",
				"minima", g.Order(), "pairs", len(g.Pairs()), "out", outPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "autoneb.yaml", "exploration config (YAML)")
	cmd.Flags().StringVar(&outPath, "out", "landscape.bin", "output graph file")
	cmd.Flags().IntVar(&minima, "minima", 4, "number of minima to discover")
	cmd.Flags().IntVar(&dim, "dim", 2, "surface dimension")
	cmd.Flags().IntVar(&wells, "wells", 6, "number of Gaussian wells on the surface")
	cmd.Flags().Int64Var(&seed, "seed", 0, "surface seed (0 = fixed default)")

	return cmd
}

func newReduceCmd() *cobra.Command {
	var (
		inPath    string
		weightKey string
	)

	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Collapse a saved multigraph to its best simple graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := landscape.LoadFile(inPath)
			if err != nil {
				return err
			}
			simple, err := landscape.ToSimpleGraph(g, weightKey)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d minima, %d connections\n", len(simple.Minima), len(simple.Edges))
			for _, pair := range g.Pairs() {
				edge := simple.Edges[pair]
				fmt.Fprintf(out, "  (%d,%d) cycle %d of %d  %s=%.6g\n",
					pair.A, pair.B, edge.CycleIdx,
					g.MaxCycleIndex(pair.A, pair.B), weightKey, edge.Weight)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "landscape.bin", "input graph file")
	cmd.Flags().StringVar(&weightKey, "weight", config.DefaultWeightKey, "cycle weight key")

	return cmd
}
