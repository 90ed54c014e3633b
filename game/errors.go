package game

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a violated precondition on an engine call. It
// signals a caller bug, never a transient condition.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
