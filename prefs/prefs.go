// Package prefs persists cosmetic user preferences in a small KEY=VALUE file.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

const darkModeKey = "MINESWEEPER_DARK_MODE"

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DarkMode returns the saved theme. ok is false when nothing has been saved
// yet, in which case the caller picks its own default.
func (s *Store) DarkMode() (dark bool, ok bool, err error) {
	values, err := s.read()
	if err != nil {
		return false, false, err
	}

	raw, found := values[darkModeKey]
	if !found {
		return false, false, nil
	}
	dark, err = strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("parse %s: %w", darkModeKey, err)
	}
	return dark, true, nil
}

// SetDarkMode saves the theme, keeping any other keys in the file.
func (s *Store) SetDarkMode(dark bool) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	values[darkModeKey] = strconv.FormatBool(dark)

	if err := godotenv.Write(values, s.path); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

func (s *Store) read() (map[string]string, error) {
	values, err := godotenv.Read(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	return values, nil
}
