package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rocketdodge/internal/config"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  log.Level
	}{
		{"", DefaultLevel},
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"nonsense", DefaultLevel},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(config.EnvLogLevel, tt.value)
			if got := Level(); got != tt.want {
				t.Fatalf("Level() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNewWritesPrefixedLines(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "info")
	var buf bytes.Buffer
	logger := New(&buf, "game")

	logger.Debug("hidden")
	logger.Info("game over", "score", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "game:") || !strings.Contains(out, "score=3") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestOpenFallsBackWithoutFile(t *testing.T) {
	t.Setenv(config.EnvLogFile, "")
	var fallback bytes.Buffer
	w, closeFn, err := Open(&fallback)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer closeFn()
	if w != &fallback {
		t.Fatal("Open did not return the fallback writer")
	}
}

func TestOpenAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	t.Setenv(config.EnvLogFile, path)

	for i := 0; i < 2; i++ {
		w, closeFn, err := Open(os.Stderr)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if _, err := w.Write([]byte("line\n")); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := closeFn(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "line\nline\n" {
		t.Fatalf("log file = %q", data)
	}
}
