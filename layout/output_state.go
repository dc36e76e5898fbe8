package layout

import (
	"encoding/json"
	"fmt"

	"github.com/fgindraud/slam/geometry"
)

// OutputState is either Disabled or Enabled with a mode, transform, and
// position. The zero value is Disabled.
type OutputState struct {
	enabled    bool
	Mode       Mode
	Transform  geometry.Transform
	BottomLeft geometry.Vec2d[int32]
}

// Disabled is the disabled OutputState.
var Disabled = OutputState{}

// Enabled builds an enabled OutputState.
func Enabled(mode Mode, transform geometry.Transform, bottomLeft geometry.Vec2d[int32]) OutputState {
	return OutputState{enabled: true, Mode: mode, Transform: transform, BottomLeft: bottomLeft}
}

// IsEnabled reports whether the output is enabled.
func (s OutputState) IsEnabled() bool {
	return s.enabled
}

// size casts Mode.Size (uint32) to the signed Rect size, swapping axes if
// the transform swaps them.
func (s OutputState) size() geometry.Vec2d[int32] {
	sz := s.Mode.Size.SwapIf(s.Transform.SwapsAxes())
	return geometry.V2[int32](int32(sz.X), int32(sz.Y))
}

// OccupiedRect returns the rectangle an enabled output occupies: its
// bottom-left corner and size, swapped per Transform.SwapsAxes. ok is
// false for a Disabled state.
func (s OutputState) OccupiedRect() (rect geometry.Rect, ok bool) {
	if !s.enabled {
		return geometry.Rect{}, false
	}
	return geometry.NewRect(s.BottomLeft, s.size()), true
}

// withBottomLeft returns a copy of an enabled state repositioned; used by
// layout normalization. No-op on a disabled state.
func (s OutputState) withBottomLeft(bl geometry.Vec2d[int32]) OutputState {
	if !s.enabled {
		return s
	}
	s.BottomLeft = bl
	return s
}

// Compare orders states: Disabled sorts before Enabled; among Enabled
// states, by bottom_left then mode size then frequency then transform.
func (s OutputState) Compare(o OutputState) int {
	if s.enabled != o.enabled {
		if !s.enabled {
			return -1
		}
		return 1
	}
	if !s.enabled {
		return 0
	}
	if c := compareVec2dI32(s.BottomLeft, o.BottomLeft); c != 0 {
		return c
	}
	if c := compareVec2dU32(s.Mode.Size, o.Mode.Size); c != 0 {
		return c
	}
	if s.Mode.Frequency != o.Mode.Frequency {
		if s.Mode.Frequency < o.Mode.Frequency {
			return -1
		}
		return 1
	}
	if s.Transform != o.Transform {
		// Arbitrary but stable tie-break: by (Reflect, Rotation).
		if s.Transform.Reflect != o.Transform.Reflect {
			if !s.Transform.Reflect {
				return -1
			}
			return 1
		}
		if s.Transform.Rotation < o.Transform.Rotation {
			return -1
		}
		return 1
	}
	return 0
}

func compareVec2dI32(a, b geometry.Vec2d[int32]) int {
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	return 0
}

func compareVec2dU32(a, b geometry.Vec2d[uint32]) int {
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	return 0
}

// wireVec2d/wireMode/wireTransform/wireEnabled mirror the persisted JSON
// shapes from spec §6.
type wireVec2d struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

type wireMode struct {
	Size      wireVec2d `json:"size"`
	Frequency uint32    `json:"frequency"`
}

type wireTransform struct {
	Reflect  bool `json:"reflect"`
	Rotation int  `json:"rotation"`
}

type wireEnabled struct {
	Mode       wireMode      `json:"mode"`
	Transform  wireTransform `json:"transform"`
	BottomLeft wireVec2d     `json:"bottom_left"`
}

type wireOutputState struct {
	Enabled *wireEnabled `json:"Enabled,omitempty"`
}

// MarshalJSON renders Disabled as "Disabled" and Enabled as
// {"Enabled": {...}}, per spec §6.
func (s OutputState) MarshalJSON() ([]byte, error) {
	if !s.enabled {
		return json.Marshal("Disabled")
	}
	w := wireOutputState{Enabled: &wireEnabled{
		Mode: wireMode{
			Size:      wireVec2d{X: int64(s.Mode.Size.X), Y: int64(s.Mode.Size.Y)},
			Frequency: s.Mode.Frequency,
		},
		Transform: wireTransform{
			Reflect:  s.Transform.Reflect,
			Rotation: int(s.Transform.Rotation),
		},
		BottomLeft: wireVec2d{X: int64(s.BottomLeft.X), Y: int64(s.BottomLeft.Y)},
	}}
	return json.Marshal(w)
}

// UnmarshalJSON parses either "Disabled" or {"Enabled": {...}}.
func (s *OutputState) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		if asString != "Disabled" {
			return layoutErrorf("OutputState.UnmarshalJSON", fmt.Errorf("unexpected string state %q", asString))
		}
		*s = Disabled
		return nil
	}

	var w wireOutputState
	if err := json.Unmarshal(data, &w); err != nil {
		return layoutErrorf("OutputState.UnmarshalJSON", err)
	}
	if w.Enabled == nil {
		return layoutErrorf("OutputState.UnmarshalJSON", fmt.Errorf("missing Enabled payload"))
	}
	e := w.Enabled
	*s = Enabled(
		Mode{
			Size:      geometry.V2[uint32](uint32(e.Mode.Size.X), uint32(e.Mode.Size.Y)),
			Frequency: e.Mode.Frequency,
		},
		geometry.Transform{Reflect: e.Transform.Reflect, Rotation: geometry.Rotation(e.Transform.Rotation)},
		geometry.V2[int32](int32(e.BottomLeft.X), int32(e.BottomLeft.Y)),
	)
	return nil
}
