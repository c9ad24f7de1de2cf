package holdem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned when an action fails validation. The wrapped
	// message names the violated constraint. A rejected action leaves the
	// game unchanged.
	ErrInvalidMove = errors.New("holdem: invalid move")

	// ErrGameNotRunning is returned when an action is attempted with fewer
	// than two funded players.
	ErrGameNotRunning = errors.New("holdem: game not running")

	// ErrHandNotRunning is returned when an action is attempted outside an
	// active betting phase.
	ErrHandNotRunning = errors.New("holdem: hand not running")
)

func invalidMovef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMove, fmt.Sprintf(format, args...))
}
