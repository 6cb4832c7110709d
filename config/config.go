// Package config loads the game configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/brodridev/minesweeper/models"
)

// EnvPrefix is prepended to every variable name read by Load.
const EnvPrefix = "MINESWEEPER_"

const (
	DefaultRows  = 10
	DefaultCols  = 10
	DefaultMines = 15
)

// Game holds the board parameters.
type Game struct {
	Rows  int `env:"ROWS" envDefault:"10"`
	Cols  int `env:"COLS" envDefault:"10"`
	Mines int `env:"MINES" envDefault:"15"`
}

// DefaultGame returns the classic 10x10 board with 15 mines.
func DefaultGame() Game {
	return Game{Rows: DefaultRows, Cols: DefaultCols, Mines: DefaultMines}
}

// Validate wraps models.ErrInvalidConfiguration when the board cannot be
// built.
func (g Game) Validate() error {
	return models.ValidateDimensions(g.Rows, g.Cols, g.Mines)
}

// Config is the full application configuration.
type Config struct {
	Game Game

	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string        `env:"LOG_FILE"`
	PrefsPath    string        `env:"PREFS_PATH" envDefault:".minesweeper"`
	DarkMode     bool          `env:"DARK_MODE" envDefault:"false"`
}

// Load reads dotenvPath (if it exists) into the environment and then parses
// the MINESWEEPER_* variables. An empty dotenvPath skips the file.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickInterval < 0 {
		return Config{}, fmt.Errorf("%w: tick interval must not be negative, got %s", models.ErrInvalidConfiguration, cfg.TickInterval)
	}
	if err := cfg.Game.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
