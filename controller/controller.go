package controller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fgindraud/slam/backend"
	"github.com/fgindraud/slam/geometry"
	"github.com/fgindraud/slam/layout"
	"github.com/fgindraud/slam/relation"
	"github.com/fgindraud/slam/solve"
	"github.com/fgindraud/slam/store"
)

// LevelTrace is a custom slog level below Debug, for the --log-level=trace
// CLI option (spec §6), which has no stdlib equivalent.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Controller runs the Waiting/Evaluating state machine of spec §4.F. It
// holds no concurrency primitives: the loop blocks in backend.WaitForChange
// and all state mutation happens between waits (spec §5).
type Controller struct {
	backend backend.Backend
	store   *store.Store
	logger  *slog.Logger

	last layout.LayoutInfo
}

// New builds a Controller over b and s. logger must not be nil.
func New(b backend.Backend, s *store.Store, logger *slog.Logger) *Controller {
	return &Controller{backend: b, store: s, logger: logger}
}

// Run queries the backend for the starting layout, then loops waiting for
// change events and evaluating each one, until ctx is cancelled or the
// backend reports a fatal error. A cancelled ctx is a clean shutdown (nil
// error); any other error is fatal and should terminate the daemon with a
// non-zero exit, per spec §4.F/§7.
func (c *Controller) Run(ctx context.Context, reactionDelay *time.Duration) error {
	initial, err := c.backend.CurrentLayout(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return controllerErrorf("Run", err)
	}
	c.last = initial
	c.logger.Info("initial layout observed", "outputs", len(initial.Layout.Entries), "causes", initial.UnsupportedCauses)

	for {
		if err := c.backend.WaitForChange(ctx, reactionDelay); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return controllerErrorf("Run", err)
		}

		newInfo, err := c.backend.CurrentLayout(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			c.logger.Warn("failed to query backend after change event, staying on last observation", "error", err)
			continue
		}

		c.evaluate(ctx, newInfo)
	}
}

// evaluate implements the Evaluating state's comparison of spec §4.F.
func (c *Controller) evaluate(ctx context.Context, new layout.LayoutInfo) {
	switch {
	case !new.UnsupportedCauses.Empty():
		c.logger.Warn("ignoring unsupported layout", "causes", new.UnsupportedCauses)

	case new.Layout.Equal(c.last.Layout):
		c.logger.Log(ctx, LevelTrace, "layout unchanged, ignoring")

	case new.Layout.SameConnectedSet(c.last.Layout):
		c.logger.Info("same connected set, storing updated arrangement")
		if err := c.store.StoreLayout(new.Layout); err != nil {
			c.logger.Error("failed to persist layout", "error", err)
		}
		c.last = new

	default:
		c.onConnectedSetChanged(ctx, new)
	}
}

// onConnectedSetChanged handles case 4: a physically different set of
// outputs. A store hit is pushed as-is; a miss is synthesized from the
// last observed layout's relations (falling back to a default chain) and
// the new outputs' modes.
func (c *Controller) onConnectedSetChanged(ctx context.Context, new layout.LayoutInfo) {
	key := store.KeyOf(new.Layout)
	if stored, ok := c.store.GetLayout(key); ok {
		c.logger.Info("connected set changed, found stored arrangement")
		if err := c.backend.ApplyLayout(ctx, stored); err != nil {
			c.logger.Error("failed to apply stored layout", "error", err)
			return
		}
		c.last = layout.From(stored.Entries, stored.Primary)
		return
	}

	c.logger.Info("connected set changed, no stored arrangement, synthesizing")
	synthesized, err := synthesize(ctx, new.Layout, c.last.Layout)
	if err != nil {
		c.logger.Error("synthesis failed, skipping", "error", err)
		return
	}

	if err := c.backend.ApplyLayout(ctx, synthesized.Layout); err != nil {
		c.logger.Error("failed to apply synthesized layout", "error", err)
		return
	}
	if err := c.store.StoreLayout(synthesized.Layout); err != nil {
		c.logger.Error("failed to persist synthesized layout", "error", err)
	}
	c.last = synthesized
}

// synthesize derives fresh positions for newLayout's entries using the
// solver, ignoring whatever positions the backend itself reported (those
// are why this is a miss in the first place: a never-before-seen set has
// no authoritative arrangement yet). Relations between outputs already
// present in previous are reused verbatim; any other consecutive pair in
// sorted order falls back to a LeftOf chain, which is always a single
// connected component and therefore always yields a supported layout.
func synthesize(ctx context.Context, newLayout, previous layout.Layout) (layout.LayoutInfo, error) {
	enabledIdx := make([]int, 0, len(newLayout.Entries))
	sizes := make([]geometry.Vec2d[uint32], 0, len(newLayout.Entries))
	for i, e := range newLayout.Entries {
		rect, ok := e.State.OccupiedRect()
		if !ok {
			continue
		}
		enabledIdx = append(enabledIdx, i)
		sizes = append(sizes, geometry.V2[uint32](uint32(rect.Size.X), uint32(rect.Size.Y)))
	}

	rel := deriveRelations(newLayout.Entries, enabledIdx, previous)

	coords, err := solve.Solve(ctx, sizes, rel)
	if err != nil {
		return layout.LayoutInfo{}, err
	}

	out := make([]layout.OutputEntry, len(newLayout.Entries))
	copy(out, newLayout.Entries)
	for k, idx := range enabledIdx {
		e := out[idx]
		out[idx] = layout.OutputEntry{
			ID:    e.ID,
			State: layout.Enabled(e.State.Mode, e.State.Transform, coords[k]),
		}
	}

	return layout.From(out, newLayout.Primary), nil
}

// deriveRelations builds the relation matrix over the enabled entries
// (indexed by enabledIdx, a subsequence of entries). Defaults to a LeftOf
// chain over consecutive enabled entries, then overrides any pair whose
// ids both occur among previous's enabled entries with the direction
// previous's geometry actually had between them.
func deriveRelations(entries []layout.OutputEntry, enabledIdx []int, previous layout.Layout) *relation.Matrix[geometry.Direction] {
	n := len(enabledIdx)
	rel := relation.New[geometry.Direction](n)
	for k := 0; k+1 < n; k++ {
		rel.Set(k, k+1, geometry.LeftOf)
	}

	previousRects := make(map[string]geometry.Rect, len(previous.Entries))
	for _, e := range previous.Entries {
		if rect, ok := e.State.OccupiedRect(); ok {
			previousRects[e.ID.String()] = rect
		}
	}

	for a := 0; a < n; a++ {
		ra, okA := previousRects[entries[enabledIdx[a]].ID.String()]
		if !okA {
			continue
		}
		for b := a + 1; b < n; b++ {
			rb, okB := previousRects[entries[enabledIdx[b]].ID.String()]
			if !okB {
				continue
			}
			if dir, ok := ra.AdjacentDirection(rb); ok {
				rel.Set(a, b, dir)
			}
		}
	}

	return rel
}
