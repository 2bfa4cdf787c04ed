package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)
	New("game").Debug("round started", "round", 1)

	out := buf.String()
	if !strings.Contains(out, "component=game") || !strings.Contains(out, "round=1") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, "json", &buf)
	New("store").Info("saved")
	if !strings.Contains(buf.String(), `"component":"store"`) {
		t.Fatalf("expected JSON component field, got: %s", buf.String())
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, "text", &buf)
	New("x").Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{"debug": slog.LevelDebug, "INFO": slog.LevelInfo, " warn ": slog.LevelWarn, "error": slog.LevelError} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayes.log")
	c, err := Open(path, slog.LevelInfo, "text")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	New("cli").Info("started")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "msg=started") {
		t.Fatalf("log file content: %s", data)
	}

	c, err = Open("", slog.LevelInfo, "text")
	if err != nil || c.Close() != nil {
		t.Fatalf("discard logger: %v", err)
	}
}
