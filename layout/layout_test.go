package layout_test

import (
	"testing"

	"github.com/fgindraud/slam/geometry"
	"github.com/fgindraud/slam/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id layout.OutputId, bl geometry.Vec2d[int32], size geometry.Vec2d[uint32]) layout.OutputEntry {
	return layout.OutputEntry{
		ID:    id,
		State: layout.Enabled(layout.Mode{Size: size, Frequency: 60}, geometry.Identity, bl),
	}
}

func TestLayoutInfoFromSupported(t *testing.T) {
	// S3, first case: two 1920x1080 rects at (0,0) and (1920,0).
	a := entry(layout.NameId("A"), geometry.V2[int32](0, 0), geometry.V2[uint32](1920, 1080))
	b := entry(layout.NameId("B"), geometry.V2[int32](1920, 0), geometry.V2[uint32](1920, 1080))
	primary := layout.NameId("A")

	info := layout.From([]layout.OutputEntry{a, b}, &primary)
	assert.True(t, info.UnsupportedCauses.Empty(), "causes: %s", info.UnsupportedCauses)
}

func TestLayoutInfoFromGaps(t *testing.T) {
	// S3, second case: offset so the center distance exceeds the average
	// vertical extent -> GAPS.
	a := entry(layout.NameId("A"), geometry.V2[int32](0, 0), geometry.V2[uint32](1920, 1080))
	b := entry(layout.NameId("B"), geometry.V2[int32](1920, 1081), geometry.V2[uint32](1920, 1080))

	info := layout.From([]layout.OutputEntry{a, b}, nil)
	assert.True(t, info.UnsupportedCauses.Has(layout.Gaps))
}

func TestLayoutInfoFromOverlaps(t *testing.T) {
	// S3, third case: rects at (0,0) and (1918,0) overlap by 2px.
	a := entry(layout.NameId("A"), geometry.V2[int32](0, 0), geometry.V2[uint32](1920, 1080))
	b := entry(layout.NameId("B"), geometry.V2[int32](1918, 0), geometry.V2[uint32](1920, 1080))

	info := layout.From([]layout.OutputEntry{a, b}, nil)
	assert.True(t, info.UnsupportedCauses.Has(layout.Overlaps))
}

func TestLayoutInfoFromDuplicateEdid(t *testing.T) {
	id := layout.EdidId(42)
	a := entry(id, geometry.V2[int32](0, 0), geometry.V2[uint32](1920, 1080))
	b := entry(id, geometry.V2[int32](1920, 0), geometry.V2[uint32](1920, 1080))

	info := layout.From([]layout.OutputEntry{a, b}, nil)
	assert.True(t, info.UnsupportedCauses.Has(layout.DuplicateEdid))
}

func TestLayoutInfoFromNormalizesNegativeOffsets(t *testing.T) {
	a := entry(layout.NameId("A"), geometry.V2[int32](-500, -200), geometry.V2[uint32](1920, 1080))
	b := entry(layout.NameId("B"), geometry.V2[int32](1420, -200), geometry.V2[uint32](1920, 1080))

	info := layout.From([]layout.OutputEntry{a, b}, nil)
	require.True(t, info.UnsupportedCauses.Empty())

	var min geometry.Vec2d[int32]
	first := true
	for _, e := range info.Layout.Entries {
		rect, ok := e.State.OccupiedRect()
		require.True(t, ok)
		if first {
			min = rect.BottomLeft
			first = false
			continue
		}
		min = min.Min(rect.BottomLeft)
	}
	assert.Equal(t, geometry.V2[int32](0, 0), min)
}

func TestLayoutInfoFromIsIdempotent(t *testing.T) {
	// Invariant 6: From(From(E,p).layout.entries, p) == From(E,p).
	a := entry(layout.NameId("A"), geometry.V2[int32](-500, -200), geometry.V2[uint32](1920, 1080))
	b := entry(layout.NameId("B"), geometry.V2[int32](1420, -200), geometry.V2[uint32](1920, 1080))
	primary := layout.NameId("A")

	once := layout.From([]layout.OutputEntry{a, b}, &primary)
	twice := layout.From(once.Layout.Entries, &primary)

	assert.True(t, once.Layout.Equal(twice.Layout))
	assert.Equal(t, once.UnsupportedCauses, twice.UnsupportedCauses)
}

func TestLayoutBoundingRectSize(t *testing.T) {
	a := entry(layout.NameId("A"), geometry.V2[int32](0, 0), geometry.V2[uint32](1920, 1080))
	b := entry(layout.NameId("B"), geometry.V2[int32](1920, 0), geometry.V2[uint32](1280, 1024))

	info := layout.From([]layout.OutputEntry{a, b}, nil)
	assert.Equal(t, geometry.V2[uint32](3200, 1080), info.Layout.BoundingRectSize())
}

func TestLayoutBoundingRectSizeAllDisabled(t *testing.T) {
	a := layout.OutputEntry{ID: layout.NameId("A"), State: layout.Disabled}
	l := layout.Layout{Entries: []layout.OutputEntry{a}}
	assert.Equal(t, geometry.Vec2d[uint32]{}, l.BoundingRectSize())
}

func TestOutputIdOrderingEdidBeforeName(t *testing.T) {
	e := layout.EdidId(1)
	n := layout.NameId("A")
	assert.True(t, e.Compare(n) < 0)
	assert.True(t, n.Compare(e) > 0)
}

func TestLayoutSameConnectedSet(t *testing.T) {
	a := entry(layout.NameId("A"), geometry.V2[int32](0, 0), geometry.V2[uint32](1920, 1080))
	b := entry(layout.NameId("B"), geometry.V2[int32](1920, 0), geometry.V2[uint32](1920, 1080))

	l1 := layout.From([]layout.OutputEntry{a, b}, nil).Layout
	bMoved := entry(layout.NameId("B"), geometry.V2[int32](0, 1080), geometry.V2[uint32](1920, 1080))
	l2 := layout.From([]layout.OutputEntry{a, bMoved}, nil).Layout

	assert.True(t, l1.SameConnectedSet(l2))
	assert.False(t, l1.Equal(l2))
}
