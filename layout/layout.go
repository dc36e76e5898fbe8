package layout

import "github.com/fgindraud/slam/geometry"

// Layout is a validated, sorted collection of OutputEntry plus an optional
// primary output. Construct it only through From (or
// deserialization, which re-runs the same pipeline); the zero value's
// invariants are not meaningful on their own.
type Layout struct {
	Entries []OutputEntry `json:"outputs"`
	Primary *OutputId     `json:"primary,omitempty"`
}

// Ids returns the sorted sequence of OutputIds in the layout: the
// "connected set" that keys the persistent store.
func (l Layout) Ids() []OutputId {
	ids := make([]OutputId, len(l.Entries))
	for i, e := range l.Entries {
		ids[i] = e.ID
	}
	return ids
}

// SameConnectedSet reports whether l and o have the same connected set of
// OutputIds (order-sensitive: both are kept sorted, so this is a direct
// sequence comparison).
func (l Layout) SameConnectedSet(o Layout) bool {
	if len(l.Entries) != len(o.Entries) {
		return false
	}
	for i := range l.Entries {
		if !l.Entries[i].ID.Equal(o.Entries[i].ID) {
			return false
		}
	}
	return true
}

// Equal reports structural equality: same entries (id, state) in the same
// order, and the same primary.
func (l Layout) Equal(o Layout) bool {
	if len(l.Entries) != len(o.Entries) {
		return false
	}
	for i := range l.Entries {
		if l.Entries[i].Compare(o.Entries[i]) != 0 {
			return false
		}
	}
	switch {
	case l.Primary == nil && o.Primary == nil:
		return true
	case l.Primary == nil || o.Primary == nil:
		return false
	default:
		return l.Primary.Equal(*o.Primary)
	}
}

// BoundingRectSize returns the componentwise max of bottom_left+size over
// enabled entries, (0,0) if none are enabled. Used to size the screen.
func (l Layout) BoundingRectSize() geometry.Vec2d[uint32] {
	var max geometry.Vec2d[uint32]
	any := false
	for _, e := range l.Entries {
		rect, ok := e.State.OccupiedRect()
		if !ok {
			continue
		}
		tr := rect.TopRight()
		cand := geometry.V2[uint32](uint32(tr.X), uint32(tr.Y))
		if !any {
			max = cand
			any = true
			continue
		}
		max = max.Max(cand)
	}
	return max
}
