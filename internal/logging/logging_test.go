package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWithoutFileDiscards(t *testing.T) {
	logger, err := New(Options{})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("expected a no-op logger")
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pixeldesk.log")
	logger, err := New(Options{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("sound playback failed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"sound playback failed"`) {
		t.Fatalf("missing warn line: %s", out)
	}
}

func TestVerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixeldesk.log")
	logger, err := New(Options{File: path, Level: "error", Verbose: true})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("verbose should enable debug")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":       zapcore.InfoLevel,
		"DEBUG":  zapcore.DebugLevel,
		" warn ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
