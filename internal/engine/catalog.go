package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog   = errors.New("scenario catalog is empty")
	ErrRateOutOfRange = errors.New("rate outside (0,1)")
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Template is one catalog entry: the fixed parameters of a scenario.
type Template struct {
	Name        string  `yaml:"name"`
	Event       string  `yaml:"event"`
	Test        string  `yaml:"test"`
	BaseRate    float64 `yaml:"base_rate"`
	Sensitivity float64 `yaml:"sensitivity"`
	Specificity float64 `yaml:"specificity"`
	Emoji       string  `yaml:"emoji"`
	Color1      string  `yaml:"color1"`
	Color2      string  `yaml:"color2"`
}

// Validate checks that every rate is strictly between 0 and 1.
func (t Template) Validate() error {
	rates := []struct {
		name string
		v    float64
	}{
		{"base_rate", t.BaseRate},
		{"sensitivity", t.Sensitivity},
		{"specificity", t.Specificity},
	}
	for _, r := range rates {
		if !(r.v > 0 && r.v < 1) {
			return fmt.Errorf("%q %s=%v: %w", t.Name, r.name, r.v, ErrRateOutOfRange)
		}
	}
	return nil
}

// Catalog is the fixed set of templates a round is drawn from.
type Catalog []Template

// Validate reports the first invariant violation in the catalog.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCatalog
	}
	for _, t := range c {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCatalog returns the embedded catalog. It panics if the embedded file is invalid,
// which can only happen through a bad edit to catalog.yaml.
func DefaultCatalog() Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("engine: embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file, or returns the embedded one when path is empty.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	return ParseCatalog(data)
}
