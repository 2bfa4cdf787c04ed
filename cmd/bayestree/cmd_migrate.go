package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/bayes-tree/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the round journal schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd, func(m *store.Migrator) error { return m.Up(cmd.Context()) }, "migrations applied")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd, func(m *store.Migrator) error { return m.Down(cmd.Context()) }, "rolled back one migration")
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd, func(m *store.Migrator) error {
			v, dirty, err := m.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", v, dirty)
			return nil
		}, "")
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
}

func withMigrator(cmd *cobra.Command, fn func(*store.Migrator) error, done string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := store.NewMigrator(cfg.DSN)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := fn(m); err != nil {
		if errors.Is(err, store.ErrNoChange) {
			fmt.Fprintln(out, "no change")
			return nil
		}
		return fmt.Errorf("migrate: %w", err)
	}
	if done != "" {
		fmt.Fprintln(out, done)
	}
	return nil
}
