package layout

import "github.com/fgindraud/slam/geometry"

// Mode is a pixel resolution plus refresh rate supported by an output.
// Frequency is rounded to an integer Hz (spec §9); equality is exact on
// both fields.
type Mode struct {
	Size      geometry.Vec2d[uint32]
	Frequency uint32
}
