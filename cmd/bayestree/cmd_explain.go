package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/bayes-tree/internal/engine"
	"github.com/DaanHessen/bayes-tree/internal/game"
	"github.com/DaanHessen/bayes-tree/internal/text"
)

var explainFlags struct {
	round int
	plain bool
	width int
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print the worked solution for one round of a seeded session",
	RunE:  runExplain,
}

func init() {
	f := explainCmd.Flags()
	f.IntVar(&explainFlags.round, "round", 1, "round number, starting at 1")
	f.BoolVar(&explainFlags.plain, "plain", false, "print plain text instead of styled markdown")
	f.IntVar(&explainFlags.width, "width", 80, "word-wrap width for styled output")
}

func runExplain(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Seed == "" {
		return errors.New("explain needs a seed (--seed or BAYES_SEED)")
	}
	if explainFlags.round < 1 {
		return fmt.Errorf("round must be at least 1 (got %d)", explainFlags.round)
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	seed, err := engine.NewSeed(cfg.Seed)
	if err != nil {
		return err
	}
	sc, q, err := game.Deal(seed, catalog, explainFlags.round)
	if err != nil {
		return err
	}

	var r text.Renderer = text.NewPlainRenderer()
	if !explainFlags.plain {
		g, err := text.NewGlamourRenderer(explainFlags.width)
		if err == nil {
			r = text.WithFallback(g, r)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Round %d: %s %s\n", explainFlags.round, sc.Emoji, sc.Name)
	fmt.Fprintf(out, "P(%s) = %.3f, P(%s|%s) = %.3f, P(not %s|not %s) = %.3f\n\n",
		sc.Event, sc.BaseRate, sc.Test, sc.Event, sc.Sensitivity, sc.Test, sc.Event, sc.Specificity)
	fmt.Fprintln(out, text.RenderSolution(r, engine.Explain(sc, q)))
	return nil
}
