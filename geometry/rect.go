package geometry

// Rect is an axis-aligned integer rectangle covering
// [bl.x, bl.x+sx) × [bl.y, bl.y+sy). Size must be non-negative; callers are
// responsible for that invariant (Rect itself does not validate, to stay a
// plain value type cheap enough to build in tight loops).
type Rect struct {
	BottomLeft Vec2d[int32]
	Size       Vec2d[int32]
}

// NewRect builds a Rect from a bottom-left corner and a size.
func NewRect(bottomLeft, size Vec2d[int32]) Rect {
	return Rect{BottomLeft: bottomLeft, Size: size}
}

func (r Rect) left() int64   { return int64(r.BottomLeft.X) }
func (r Rect) right() int64  { return int64(r.BottomLeft.X) + int64(r.Size.X) }
func (r Rect) bottom() int64 { return int64(r.BottomLeft.Y) }
func (r Rect) top() int64    { return int64(r.BottomLeft.Y) + int64(r.Size.Y) }

// hcenter2/vcenter2 are the horizontal/vertical center coordinates, scaled
// by 2 so an odd Size never forces fractional arithmetic; every comparison
// in Overlaps/AdjacentDirection stays exact int64 math.
func (r Rect) hcenter2() int64 { return 2*int64(r.BottomLeft.X) + int64(r.Size.X) }
func (r Rect) vcenter2() int64 { return 2*int64(r.BottomLeft.Y) + int64(r.Size.Y) }

// Center returns the rectangle's center point (integer-truncated).
func (r Rect) Center() Vec2d[int32] {
	return Vec2d[int32]{X: r.BottomLeft.X + r.Size.X/2, Y: r.BottomLeft.Y + r.Size.Y/2}
}

// TopRight returns the rectangle's top-right corner.
func (r Rect) TopRight() Vec2d[int32] {
	return r.BottomLeft.Add(r.Size)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Overlaps reports whether r and o share any interior area, using
// half-open interval semantics: r is strictly outside o iff
// r.right <= o.left (or the symmetric cases on any side).
func (r Rect) Overlaps(o Rect) bool {
	if r.right() <= o.left() || o.right() <= r.left() {
		return false
	}
	if r.top() <= o.bottom() || o.top() <= r.bottom() {
		return false
	}
	return true
}

// AdjacentDirection returns the Direction relating r to o iff they touch on
// exactly one edge and their centers, projected onto the shared axis, are
// within the average of their extents on that axis (see spec §4.A).
// Overlapping rectangles are never adjacent — the two predicates are
// mutually exclusive, per invariant 2.
//
// When touching corners make more than one side match, the tie-break order
// is LeftOf, RightOf, Under, Above.
func (r Rect) AdjacentDirection(o Rect) (Direction, bool) {
	if r.Overlaps(o) {
		return 0, false
	}

	// savgX2/savgY2 are 2x the average extent, matching the *2 scale of
	// hcenter2/vcenter2 so the comparison stays exact int64 math.
	savgX2 := int64(r.Size.X) + int64(o.Size.X)
	savgY2 := int64(r.Size.Y) + int64(o.Size.Y)

	if r.right() == o.left() && abs64(r.vcenter2()-o.vcenter2()) <= savgY2 {
		return LeftOf, true
	}
	if r.left() == o.right() && abs64(r.vcenter2()-o.vcenter2()) <= savgY2 {
		return RightOf, true
	}
	if r.top() == o.bottom() && abs64(r.hcenter2()-o.hcenter2()) <= savgX2 {
		return Under, true
	}
	if r.bottom() == o.top() && abs64(r.hcenter2()-o.hcenter2()) <= savgX2 {
		return Above, true
	}
	return 0, false
}
