package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/DaanHessen/bayes-tree/internal/game"
	"github.com/DaanHessen/bayes-tree/internal/logging"
	"github.com/DaanHessen/bayes-tree/internal/store"
	"github.com/DaanHessen/bayes-tree/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive quiz (default)",
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logging.New("cli")

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	seed, err := sessionSeed(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var journal game.Journal
	if cfg.DSN != "" {
		db, err := store.Open(ctx, cfg.DSN)
		if err != nil {
			// the journal is optional; play on without it
			fmt.Fprintf(cmd.ErrOrStderr(), "round journal disabled: %v\n", err)
			log.Warn("journal unavailable", "err", err)
		} else {
			defer db.Close()
			journal = store.NewRoundRepo(db)
		}
	}

	session := uuid.New()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session seed: %s\n", seed.Text)
	if journal != nil {
		fmt.Fprintf(out, "Session id: %s (bayestree history --session %s)\n", session, session)
	}
	summary, err := ui.Run(ctx, ui.Options{
		Config:    cfg,
		Catalog:   catalog,
		Seed:      seed,
		Journal:   journal,
		Logger:    logging.New("game"),
		SessionID: session,
	})
	if err != nil {
		return err
	}

	log.Info("session finished", "answered", summary.Answered, "correct", summary.Correct, "best_streak", summary.BestStreak)
	if summary.Answered > 0 {
		fmt.Fprintf(out, "%d of %d correct, best streak %d\n", summary.Correct, summary.Answered, summary.BestStreak)
		if med, err := summary.MedianError(); err == nil {
			fmt.Fprintf(out, "Median error: %.3f\n", med)
		}
	}
	return nil
}
