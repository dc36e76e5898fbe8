package backend

import (
	"context"
	"time"

	"github.com/fgindraud/slam/layout"
)

// Backend is the seam with a windowing server session (spec §6). The
// concrete implementation is out of scope for this repo; Fake provides an
// in-memory stand-in for tests and for cmd/slamd's demo mode.
type Backend interface {
	// CurrentLayout snapshots the connected outputs: ids, modes, transforms,
	// positions. It marks UnsupportedCauses' Clones bit when the server
	// reports a cloneable group, which layout.From cannot detect
	// on its own.
	CurrentLayout(ctx context.Context) (layout.LayoutInfo, error)

	// WaitForChange blocks until a display-topology event is observed. If
	// debounce is non-nil, once the first event arrives, further events
	// within the window are coalesced. A non-nil error is either ctx's own
	// error (the wait was cancelled) or an unrecoverable session failure
	// (wrap ErrFatal).
	WaitForChange(ctx context.Context, debounce *time.Duration) error

	// ApplyLayout pushes l to the server under a scoped grab (see BeginGrab):
	// resize to a provisional bounding size covering both the old and new
	// rectangles, disable unused assignments, re-assign clones, assign the
	// rest, resize to the final size, and set the primary output last.
	ApplyLayout(ctx context.Context, l layout.Layout) error

	// BeginGrab acquires the server-level grab so apply_layout's steps are
	// observed atomically by other clients. Every exit path must call
	// Release exactly once, typically via defer.
	BeginGrab(ctx context.Context) (Grab, error)
}

// Grab is a scoped exclusive-apply critical section on the server. Failures
// before Release are recoverable by reverting; failures after Release are
// only logged (spec §6).
type Grab interface {
	Release() error
}
