package main

import (
	"fmt"
	"os"

	"github.com/brodridev/minesweeper/config"
	"github.com/brodridev/minesweeper/game"
	"github.com/brodridev/minesweeper/logger"
	"github.com/brodridev/minesweeper/prefs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	log, closer, err := logger.Open(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := prefs.NewStore(cfg.PrefsPath)
	theme := game.LightTheme
	dark, ok, err := store.DarkMode()
	if err != nil {
		log.WithError(err).Warn("load theme preference")
	}
	if !ok {
		dark = cfg.DarkMode
	}
	if dark {
		theme = game.DarkTheme
	}

	session := game.NewSession(
		game.WithTickInterval(cfg.TickInterval),
		game.WithLogger(log),
	)
	renderer := game.NewRenderer(theme)
	controller := game.NewGameController(session, renderer, store, cfg.Game, log)

	if err := controller.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	switch snap := session.Snapshot(); snap.State {
	case game.Won:
		fmt.Println("Congratulations! You won the game!")
	case game.Lost:
		fmt.Println("Game Over! You hit a mine.")
	}
	return nil
}
