package script

import (
	"errors"
	"fmt"
)

// Errors reported by script operations.
var (
	// ErrClosed is returned when using a closed Generator.
	ErrClosed = errors.New("script closed")

	// ErrNoCellFunc is returned when a script defines no cell function.
	ErrNoCellFunc = errors.New("script does not define function cell")

	// ErrBadReturn is returned when cell returns something other than
	// non-negative integers.
	ErrBadReturn = errors.New("cell must return non-negative integers")

	// ErrTimeout is returned when a script runs past its deadline.
	ErrTimeout = errors.New("script execution timeout")
)

// Error reports a failure in a named script. Index is the cell being
// generated, or -1 while loading.
type Error struct {
	Script string
	Index  int
	Err    error
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("script %s: %v", e.Script, e.Err)
	}
	return fmt.Sprintf("script %s: cell %d: %v", e.Script, e.Index, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
