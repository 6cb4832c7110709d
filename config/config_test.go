package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/brodridev/minesweeper/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game != DefaultGame() {
		t.Fatalf("expected default game %+v, got %+v", DefaultGame(), cfg.Game)
	}
	if cfg.TickInterval != time.Second {
		t.Fatalf("expected 1s tick, got %s", cfg.TickInterval)
	}
	if cfg.LogLevel != "info" || cfg.LogFile != "" || cfg.PrefsPath != ".minesweeper" || cfg.DarkMode {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MINESWEEPER_ROWS", "16")
	t.Setenv("MINESWEEPER_COLS", "30")
	t.Setenv("MINESWEEPER_MINES", "99")
	t.Setenv("MINESWEEPER_TICK_INTERVAL", "250ms")
	t.Setenv("MINESWEEPER_DARK_MODE", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game != (Game{Rows: 16, Cols: 30, Mines: 99}) {
		t.Fatalf("unexpected game %+v", cfg.Game)
	}
	if cfg.TickInterval != 250*time.Millisecond || !cfg.DarkMode {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadFromDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("MINESWEEPER_ROWS=5\nMINESWEEPER_COLS=6\nMINESWEEPER_MINES=7\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv.Load sets the process env; register cleanup through t.Setenv.
	for _, key := range []string{"MINESWEEPER_ROWS", "MINESWEEPER_COLS", "MINESWEEPER_MINES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game != (Game{Rows: 5, Cols: 6, Mines: 7}) {
		t.Fatalf("unexpected game %+v", cfg.Game)
	}
}

func TestLoadMissingDotenvIsIgnored(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"too many mines", map[string]string{"MINESWEEPER_ROWS": "3", "MINESWEEPER_COLS": "3", "MINESWEEPER_MINES": "9"}},
		{"zero mines", map[string]string{"MINESWEEPER_MINES": "0"}},
		{"zero rows", map[string]string{"MINESWEEPER_ROWS": "0"}},
		{"negative tick", map[string]string{"MINESWEEPER_TICK_INTERVAL": "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if !errors.Is(err, models.ErrInvalidConfiguration) {
				t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("MINESWEEPER_ROWS", "lots")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
