package util

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings. Environment variables are read first; CLI flags override them.
type Config struct {
	Seed        string `env:"BAYES_SEED"`
	DSN         string `env:"DATABASE_URL"` // empty disables the round journal
	Theme       string `env:"BAYES_THEME" envDefault:"catppuccin"`
	CatalogPath string `env:"BAYES_CATALOG"`

	// CellWidth and CellHeight are the logical pixels covered by one terminal cell.
	CellWidth  float64 `env:"BAYES_CELL_WIDTH" envDefault:"6"`
	CellHeight float64 `env:"BAYES_CELL_HEIGHT" envDefault:"16"`

	CorrectDelay   time.Duration `env:"BAYES_CORRECT_DELAY" envDefault:"2s"`
	IncorrectDelay time.Duration `env:"BAYES_INCORRECT_DELAY" envDefault:"5s"`

	LogFile   string `env:"BAYES_LOG_FILE"`
	LogLevel  string `env:"BAYES_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BAYES_LOG_FORMAT" envDefault:"text"`
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()
	return ParseEnv()
}

// ParseEnv fills a Config from the current environment only.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive (got %vx%v)", c.CellWidth, c.CellHeight))
	}
	if c.CorrectDelay <= 0 || c.IncorrectDelay <= 0 {
		errs = append(errs, fmt.Errorf("round delays must be positive (got %s, %s)", c.CorrectDelay, c.IncorrectDelay))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json (got %q)", c.LogFormat))
	}
	return errors.Join(errs...)
}

var seedAlphabet = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// GenerateSeed returns a random 24 character lower-case seed.
func GenerateSeed() (string, error) {
	buf := make([]byte, 15)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedAlphabet.EncodeToString(buf)), nil
}
