package wireworld

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is matched by errors.Is for every write that falls
	// outside the board.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidState is returned when a write carries an unknown state value.
	ErrInvalidState = errors.New("invalid cell state")
)

// OutOfRangeError describes a write to a coordinate outside the board.
type OutOfRangeError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) out of range for %dx%d board", e.X, e.Y, e.Width, e.Height)
}

// Is makes errors.Is(err, ErrOutOfRange) succeed for any OutOfRangeError.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// IsOutOfRange reports whether err was caused by an out of range write.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

func outOfRange(x, y, w, h int) error {
	return errors.WithStack(&OutOfRangeError{X: x, Y: y, Width: w, Height: h})
}
