package geometry

// Number is the set of integer types Vec2d is instantiated over: int32 for
// signed coordinates (bottom_left), uint32 for non-negative sizes (mode
// pixel dimensions).
type Number interface {
	~int32 | ~uint32
}

// Vec2d is a pair (X, Y). Axis orientation is mathematical: X grows right,
// Y grows up. Used both as a coordinate (signed) and a size (non-negative).
type Vec2d[T Number] struct {
	X, Y T
}

// V2 is a small constructor, used pervasively in tests and call sites that
// build literal vectors inline.
func V2[T Number](x, y T) Vec2d[T] {
	return Vec2d[T]{X: x, Y: y}
}

// Add returns the componentwise sum.
func (v Vec2d[T]) Add(o Vec2d[T]) Vec2d[T] {
	return Vec2d[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the componentwise difference.
func (v Vec2d[T]) Sub(o Vec2d[T]) Vec2d[T] {
	return Vec2d[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Min returns the componentwise minimum of v and o.
func (v Vec2d[T]) Min(o Vec2d[T]) Vec2d[T] {
	return Vec2d[T]{X: minT(v.X, o.X), Y: minT(v.Y, o.Y)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec2d[T]) Max(o Vec2d[T]) Vec2d[T] {
	return Vec2d[T]{X: maxT(v.X, o.X), Y: maxT(v.Y, o.Y)}
}

// Swap returns (Y, X); used when a Transform that swaps axes is applied to
// a size.
func (v Vec2d[T]) Swap() Vec2d[T] {
	return Vec2d[T]{X: v.Y, Y: v.X}
}

// SwapIf returns Swap() when cond is true, v otherwise. Named after the
// spec's OutputState.Enabled occupied-rectangle rule: mode.size.swap_if(transform.swaps_axes).
func (v Vec2d[T]) SwapIf(cond bool) Vec2d[T] {
	if cond {
		return v.Swap()
	}
	return v
}

func minT[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}
