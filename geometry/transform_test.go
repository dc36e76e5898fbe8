package geometry_test

import (
	"testing"

	"github.com/fgindraud/slam/geometry"
	"github.com/stretchr/testify/assert"
)

func allTransforms() []geometry.Transform {
	var ts []geometry.Transform
	for _, reflect := range []bool{false, true} {
		for _, rot := range []geometry.Rotation{geometry.R0, geometry.R90, geometry.R180, geometry.R270} {
			ts = append(ts, geometry.Transform{Reflect: reflect, Rotation: rot})
		}
	}
	return ts
}

func TestTransformRotate180EqualsDoubleReflect(t *testing.T) {
	for _, tr := range allTransforms() {
		assert.Equal(t, tr.Rotate(geometry.R180), tr.ReflectX().ReflectY(), "transform %+v", tr)
	}
}

func TestTransformRotate90ReflectYEqualsRotate270ReflectX(t *testing.T) {
	for _, tr := range allTransforms() {
		assert.Equal(t, tr.Rotate(geometry.R90).ReflectY(), tr.Rotate(geometry.R270).ReflectX(), "transform %+v", tr)
	}
}

func TestTransformRotateOrderFour(t *testing.T) {
	for _, tr := range allTransforms() {
		got := tr
		for i := 0; i < 4; i++ {
			got = got.Rotate(geometry.R90)
		}
		assert.Equal(t, tr, got)
	}
}

func TestTransformSwapsAxes(t *testing.T) {
	assert.False(t, geometry.Transform{Rotation: geometry.R0}.SwapsAxes())
	assert.True(t, geometry.Transform{Rotation: geometry.R90}.SwapsAxes())
	assert.False(t, geometry.Transform{Rotation: geometry.R180}.SwapsAxes())
	assert.True(t, geometry.Transform{Rotation: geometry.R270}.SwapsAxes())
}

func TestTransformEqualityIsStructural(t *testing.T) {
	a := geometry.Transform{Reflect: true, Rotation: geometry.R90}
	b := geometry.Transform{Reflect: true, Rotation: geometry.R90}
	c := geometry.Transform{Reflect: false, Rotation: geometry.R90}
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
