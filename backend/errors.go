package backend

import (
	"errors"
	"fmt"
)

// Sentinel errors for the backend package.
var (
	// ErrFatal marks an unrecoverable session failure (server disconnect,
	// protocol error). It propagates out of the daemon loop and terminates
	// the process with a non-zero exit, per spec §4.F/§7.
	ErrFatal = errors.New("backend: fatal session failure")

	// ErrModeUnavailable indicates a layout requests a Mode the output does
	// not currently support.
	ErrModeUnavailable = errors.New("backend: mode not available on output")

	// ErrGrabHeld indicates BeginGrab was called while a previous Grab on
	// the same Backend has not yet been released.
	ErrGrabHeld = errors.New("backend: grab already held")
)

func backendErrorf(op string, err error) error {
	return fmt.Errorf("backend: %s: %w", op, err)
}
