package game

import "fmt"

// InvalidConfigError reports a board configuration which cannot produce a
// playable game.
type InvalidConfigError struct {
	Reason string
}

func (e InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid board config: %s", e.Reason)
}

// OutOfBoundsError reports coordinates outside the board. The failed call
// leaves the board unchanged.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside the %dx%d board", e.X, e.Y, e.Width, e.Height)
}
