package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hooksdemo/internal/config"
)

func TestNewLogger_WritesToFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooksdemo.log")
	logger, closeLog, err := newLogger(config.LogConfig{File: path, Level: "warn"}, false)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "k=v") {
		t.Errorf("missing warn line: %q", out)
	}
}

func TestNewLogger_VerboseEnablesDebug(t *testing.T) {
	logger, closeLog, err := newLogger(config.LogConfig{Level: "error"}, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("verbose should enable debug")
	}
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	if _, _, err := newLogger(config.LogConfig{Level: "loud"}, false); err == nil {
		t.Error("expected error for unknown level")
	}
}
