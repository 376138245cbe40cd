package mines

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition violations. The board panics with the
// typed errors below, which match these via errors.Is.
var (
	ErrOutOfBounds      = errors.New("mines: coordinates out of bounds")
	ErrInvalidFlagColor = errors.New("mines: invalid flag color")
)

// OutOfBoundsError reports a coordinate pair outside [0,Size)x[0,Size).
type OutOfBoundsError struct {
	Op   string
	X, Y int
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("mines: %s: (%d,%d) outside %dx%d board", e.Op, e.X, e.Y, e.Size, e.Size)
}

// Is makes errors.Is(err, ErrOutOfBounds) hold.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// InvalidFlagColorError reports a flag color other than Red, Green or Blue.
type InvalidFlagColorError struct {
	Color Color
}

func (e *InvalidFlagColorError) Error() string {
	return fmt.Sprintf("mines: %s is not a flag color", e.Color)
}

// Is makes errors.Is(err, ErrInvalidFlagColor) hold.
func (e *InvalidFlagColorError) Is(target error) bool {
	return target == ErrInvalidFlagColor
}
