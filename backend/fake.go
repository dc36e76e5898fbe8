package backend

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fgindraud/slam/layout"
)

var _ Backend = (*Fake)(nil)

// AppliedTransaction records one ApplyLayout call, tagged with the
// correlation ID threaded through its log lines (spec §6's scoped grab).
type AppliedTransaction struct {
	CorrelationID string
	Layout        layout.Layout
}

// Fake is an in-memory Backend for controller tests and cmd/slamd's
// -backend=fake demo mode: it has no real windowing server, just a current
// LayoutInfo and a queue of topology-change events fed by QueueChange.
type Fake struct {
	mu       sync.Mutex
	current  layout.LayoutInfo
	events   chan layout.LayoutInfo
	waitErr  error
	applied  []AppliedTransaction
	grabOpen bool
	logger   *slog.Logger
}

// NewFake builds a Fake whose current layout starts at initial. logger may
// be nil, in which case slog.Default() is used.
func NewFake(initial layout.LayoutInfo, logger *slog.Logger) *Fake {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fake{
		current: initial,
		events:  make(chan layout.LayoutInfo, 16),
		logger:  logger,
	}
}

// QueueChange enqueues a topology-change event: the next WaitForChange call
// (after debounce coalescing) will adopt info as the current layout.
func (f *Fake) QueueChange(info layout.LayoutInfo) {
	f.events <- info
}

// FailNextWait makes the next WaitForChange call return err immediately,
// simulating a fatal backend session failure (spec §4.F).
func (f *Fake) FailNextWait(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waitErr = err
}

// Applied returns every ApplyLayout transaction recorded so far, in order.
func (f *Fake) Applied() []AppliedTransaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]AppliedTransaction, len(f.applied))
	copy(out, f.applied)
	return out
}

// CurrentLayout returns the layout most recently adopted, either at
// construction or by a prior WaitForChange/ApplyLayout.
func (f *Fake) CurrentLayout(ctx context.Context) (layout.LayoutInfo, error) {
	if err := ctx.Err(); err != nil {
		return layout.LayoutInfo{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, nil
}

// WaitForChange blocks on the next queued event. With debounce set, once
// the first event arrives it keeps draining the queue until debounce
// elapses, adopting only the last event seen (coalescing, per spec §6).
func (f *Fake) WaitForChange(ctx context.Context, debounce *time.Duration) error {
	f.mu.Lock()
	if f.waitErr != nil {
		err := f.waitErr
		f.waitErr = nil
		f.mu.Unlock()
		return err
	}
	f.mu.Unlock()

	var latest layout.LayoutInfo
	select {
	case <-ctx.Done():
		return ctx.Err()
	case latest = <-f.events:
	}

	if debounce != nil {
		timer := time.NewTimer(*debounce)
		defer timer.Stop()
	drain:
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
				break drain
			case ev := <-f.events:
				latest = ev
			}
		}
	}

	f.mu.Lock()
	f.current = latest
	f.mu.Unlock()
	return nil
}

// BeginGrab acquires the fake's single grab slot. Only one Grab may be open
// at a time, mirroring the real server-level exclusive critical section.
func (f *Fake) BeginGrab(ctx context.Context) (Grab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.grabOpen {
		return nil, backendErrorf("BeginGrab", ErrGrabHeld)
	}
	f.grabOpen = true
	return &fakeGrab{f: f}, nil
}

type fakeGrab struct {
	f        *Fake
	released bool
}

// Release ends the grab. Calling it more than once is a no-op, matching
// the guaranteed-release-pairing discipline of spec §9 (defer grab.Release()
// is always safe to reach twice on an early-return path that already
// released).
func (g *fakeGrab) Release() error {
	g.f.mu.Lock()
	defer g.f.mu.Unlock()
	if g.released {
		return nil
	}
	g.released = true
	g.f.grabOpen = false
	return nil
}

// ApplyLayout records the transaction under a scoped grab and adopts l
// (reclassified through layout.From, as the server would now report it) as
// the current layout.
func (f *Fake) ApplyLayout(ctx context.Context, l layout.Layout) error {
	grab, err := f.BeginGrab(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := grab.Release(); releaseErr != nil {
			f.logger.Error("grab release failed", "error", releaseErr)
		}
	}()

	id := uuid.New().String()
	f.logger.Debug("applying layout", "correlation_id", id, "outputs", len(l.Entries))

	info := layout.From(l.Entries, l.Primary)

	f.mu.Lock()
	f.current = info
	f.applied = append(f.applied, AppliedTransaction{CorrelationID: id, Layout: l})
	f.mu.Unlock()

	f.logger.Info("applied layout", "correlation_id", id)
	return nil
}
