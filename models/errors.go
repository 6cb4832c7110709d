package models

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when the board dimensions or the mine
// count cannot produce a playable board.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ValidateDimensions checks rows > 0, cols > 0 and 0 < mines < rows*cols.
func ValidateDimensions(rows, cols, mines int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	if mines <= 0 || mines >= rows*cols {
		return fmt.Errorf("%w: mine count must be between 1 and %d, got %d", ErrInvalidConfiguration, rows*cols-1, mines)
	}
	return nil
}
