package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DaanHessen/bayes-tree/internal/engine"
	"github.com/DaanHessen/bayes-tree/internal/logging"
	"github.com/DaanHessen/bayes-tree/internal/util"
)

// loadConfig reads .env and the environment, then applies any flags set on the command line.
func loadConfig(cmd *cobra.Command) (util.Config, error) {
	cfg, err := util.Load()
	if err != nil {
		return util.Config{}, err
	}
	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("seed", &cfg.Seed, rootFlags.seed)
	override("dsn", &cfg.DSN, rootFlags.dsn)
	override("catalog", &cfg.CatalogPath, rootFlags.catalog)
	override("theme", &cfg.Theme, rootFlags.theme)
	override("log-file", &cfg.LogFile, rootFlags.logFile)
	override("log-level", &cfg.LogLevel, rootFlags.logLevel)
	override("log-format", &cfg.LogFormat, rootFlags.logFormat)
	if err := cfg.Validate(); err != nil {
		return util.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupLogging sends logs to cfg.LogFile, or nowhere when it is empty.
func setupLogging(cfg util.Config) (io.Closer, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.Open(cfg.LogFile, level, cfg.LogFormat)
}

// loadCatalog returns the configured catalog after checking every template.
func loadCatalog(cfg util.Config) (engine.Catalog, error) {
	c, err := engine.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return c, nil
}

// sessionSeed returns the configured seed or a fresh random one.
func sessionSeed(cfg util.Config, log *slog.Logger) (engine.Seed, error) {
	text := cfg.Seed
	if text == "" {
		generated, err := util.GenerateSeed()
		if err != nil {
			return engine.Seed{}, fmt.Errorf("generate seed: %w", err)
		}
		text = generated
		log.Info("generated session seed", "seed", text)
	}
	return engine.NewSeed(text)
}
