package layout

import (
	"sort"

	"github.com/fgindraud/slam/geometry"
	"github.com/fgindraud/slam/relation"
)

// LayoutInfo pairs a Layout with its classification. From always produces
// a value — invalid layouts are not silently discarded, because the
// controller needs to see them to decide between ignoring and storing.
type LayoutInfo struct {
	Layout            Layout
	UnsupportedCauses UnsupportedCauses
}

// From runs the full pipeline: sort entries by (id, state), normalize
// enabled positions so their componentwise minimum bottom_left is (0,0),
// then classify with checkUnsupported.
func From(entries []OutputEntry, primary *OutputId) LayoutInfo {
	sorted := make([]OutputEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	normalized := normalize(sorted)
	causes := checkUnsupported(normalized)

	return LayoutInfo{
		Layout:            Layout{Entries: normalized, Primary: primary},
		UnsupportedCauses: causes,
	}
}

// normalize subtracts the componentwise minimum bottom_left over enabled
// entries from every enabled entry's bottom_left. A no-op when nothing is
// enabled.
func normalize(entries []OutputEntry) []OutputEntry {
	var min geometry.Vec2d[int32]
	any := false
	for _, e := range entries {
		rect, ok := e.State.OccupiedRect()
		if !ok {
			continue
		}
		if !any {
			min = rect.BottomLeft
			any = true
			continue
		}
		min = min.Min(rect.BottomLeft)
	}
	if !any {
		return entries
	}

	out := make([]OutputEntry, len(entries))
	for i, e := range entries {
		if !e.State.IsEnabled() {
			out[i] = e
			continue
		}
		out[i] = OutputEntry{ID: e.ID, State: e.State.withBottomLeft(e.State.BottomLeft.Sub(min))}
	}
	return out
}

// checkUnsupported classifies a sorted, normalized entry list per spec
// §4.C: builds a relation.Matrix[geometry.Direction] over the enabled
// entries via Rect.AdjacentDirection, flags OVERLAPS/GAPS from it, and
// flags DUPLICATE_EDID by walking consecutive sorted ids. CLONES is never
// set here — only the backend, which knows about server-reported clone
// groups, sets it.
func checkUnsupported(entries []OutputEntry) UnsupportedCauses {
	var causes UnsupportedCauses

	type enabledEntry struct {
		rect geometry.Rect
	}
	var enabled []enabledEntry
	for _, e := range entries {
		if rect, ok := e.State.OccupiedRect(); ok {
			enabled = append(enabled, enabledEntry{rect: rect})
		}
	}

	m := relation.New[geometry.Direction](len(enabled))
	for i := 0; i < len(enabled); i++ {
		for j := i + 1; j < len(enabled); j++ {
			if enabled[i].rect.Overlaps(enabled[j].rect) {
				causes = causes.With(Overlaps)
				continue
			}
			if dir, ok := enabled[i].rect.AdjacentDirection(enabled[j].rect); ok {
				m.Set(i, j, dir)
			}
		}
	}
	if !m.IsSingleConnectedComponent() {
		causes = causes.With(Gaps)
	}

	for i := 1; i < len(entries); i++ {
		if entries[i-1].ID.Equal(entries[i].ID) {
			causes = causes.With(DuplicateEdid)
		}
	}

	return causes
}

// WithClones returns info with the CLONES cause added, for the backend to
// call when the server reports output clones (layout validation cannot
// otherwise detect them).
func (info LayoutInfo) WithClones() LayoutInfo {
	info.UnsupportedCauses = info.UnsupportedCauses.With(Clones)
	return info
}
