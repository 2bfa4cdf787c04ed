package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalogNames(t *testing.T) {
	c := DefaultCatalog()
	var names []string
	for _, tpl := range c {
		names = append(names, tpl.Name)
	}
	want := []string{"Medical Test", "Email Spam", "Weather Prediction"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("catalog names mismatch:\n%s", diff)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("embedded catalog invalid: %v", err)
	}
}

func TestDefaultCatalogMedicalRates(t *testing.T) {
	got := DefaultCatalog()[0]
	want := Template{
		Name: "Medical Test", Event: "Has Disease", Test: "Tests Positive",
		BaseRate: 0.01, Sensitivity: 0.95, Specificity: 0.98,
		Emoji: "🏥", Color1: "#ff6b6b", Color2: "#4ecdc4",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("medical template mismatch:\n%s", diff)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	if _, err := ParseCatalog([]byte("[]")); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	bad := []byte("- name: Broken\n  base_rate: 1.5\n  sensitivity: 0.5\n  specificity: 0.5\n")
	if _, err := ParseCatalog(bad); !errors.Is(err, ErrRateOutOfRange) {
		t.Fatalf("expected ErrRateOutOfRange, got %v", err)
	}
	if _, err := ParseCatalog([]byte("{not: [a list")); err == nil {
		t.Fatal("expected YAML error")
	}
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := []byte("- name: Coin\n  event: Biased\n  test: Heads\n  base_rate: 0.5\n  sensitivity: 0.7\n  specificity: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c) != 1 || c[0].Test != "Heads" {
		t.Fatalf("unexpected catalog: %+v", c)
	}
	if _, err := LoadCatalog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if def, err := LoadCatalog(""); err != nil || len(def) != 3 {
		t.Fatalf("empty path should load embedded catalog, got %d templates, err %v", len(def), err)
	}
}
