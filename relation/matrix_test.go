package relation_test

import (
	"testing"

	"github.com/fgindraud/slam/geometry"
	"github.com/fgindraud/slam/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOnEmptyMatrixIsAbsent(t *testing.T) {
	m := relation.New[geometry.Direction](3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_, ok := m.Get(i, j)
			assert.False(t, ok)
		}
	}
}

func TestSetGetInverseConsistency(t *testing.T) {
	// Invariant 3: get(j,i) is always the inverse of get(i,j).
	m := relation.New[geometry.Direction](2)
	m.Set(0, 1, geometry.LeftOf)

	fwd, ok := m.Get(0, 1)
	require.True(t, ok)
	assert.Equal(t, geometry.LeftOf, fwd)

	back, ok := m.Get(1, 0)
	require.True(t, ok)
	assert.Equal(t, geometry.RightOf, back)
	assert.Equal(t, fwd.Inverse(), back)
}

func TestSetViaHigherIndexFirst(t *testing.T) {
	// Setting (j,i) with j>i should be equivalent to setting the inverse at (i,j).
	m := relation.New[geometry.Direction](2)
	m.Set(1, 0, geometry.Above)

	fwd, ok := m.Get(0, 1)
	require.True(t, ok)
	assert.Equal(t, geometry.Above.Inverse(), fwd)
}

func TestDiagonalAlwaysAbsent(t *testing.T) {
	m := relation.New[geometry.Direction](3)
	m.Set(1, 1, geometry.LeftOf)
	_, ok := m.Get(1, 1)
	assert.False(t, ok)
}

func TestClearRemovesRelation(t *testing.T) {
	m := relation.New[geometry.Direction](2)
	m.Set(0, 1, geometry.LeftOf)
	m.Clear(0, 1)
	_, ok := m.Get(0, 1)
	assert.False(t, ok)
	_, ok = m.Get(1, 0)
	assert.False(t, ok)
}

func TestAddElementPreservesExisting(t *testing.T) {
	m := relation.New[geometry.Direction](2)
	m.Set(0, 1, geometry.LeftOf)

	idx := m.AddElement()
	assert.Equal(t, 2, idx)
	assert.Equal(t, 3, m.N())

	fwd, ok := m.Get(0, 1)
	require.True(t, ok)
	assert.Equal(t, geometry.LeftOf, fwd)

	_, ok = m.Get(0, idx)
	assert.False(t, ok)
	_, ok = m.Get(1, idx)
	assert.False(t, ok)

	m.Set(1, idx, geometry.Under)
	got, ok := m.Get(1, idx)
	require.True(t, ok)
	assert.Equal(t, geometry.Under, got)
}

func TestRemoveThenAddRoundTrip(t *testing.T) {
	// Invariant 4: remove(k) then add_element restores an isomorphic
	// matrix over the remaining elements plus one fresh, absent one.
	m := relation.New[geometry.Direction](3)
	m.Set(0, 1, geometry.LeftOf)
	m.Set(1, 2, geometry.Above)
	m.Set(0, 2, geometry.LeftOf)

	m.RemoveElement(1)
	require.Equal(t, 2, m.N())

	// Old element 2 is now index 1; old element 0 is still index 0.
	got, ok := m.Get(0, 1)
	require.True(t, ok)
	assert.Equal(t, geometry.LeftOf, got)

	idx := m.AddElement()
	assert.Equal(t, 2, idx)
	_, ok = m.Get(0, idx)
	assert.False(t, ok)
	_, ok = m.Get(1, idx)
	assert.False(t, ok)
}

func TestRemoveElementShiftsHigherIndices(t *testing.T) {
	m := relation.New[geometry.Direction](4)
	m.Set(0, 1, geometry.LeftOf)
	m.Set(2, 3, geometry.Above)

	m.RemoveElement(1)
	require.Equal(t, 3, m.N())

	_, ok := m.Get(0, 1)
	assert.False(t, ok)

	got, ok := m.Get(1, 2)
	require.True(t, ok)
	assert.Equal(t, geometry.Above, got)
}

func TestRemoveElementOutOfRangePanics(t *testing.T) {
	m := relation.New[geometry.Direction](2)
	assert.Panics(t, func() { m.RemoveElement(5) })
}

func TestGetOutOfRangePanics(t *testing.T) {
	m := relation.New[geometry.Direction](2)
	assert.Panics(t, func() { m.Get(0, 5) })
}

func TestIsSingleConnectedComponentTrivialCases(t *testing.T) {
	assert.True(t, relation.New[geometry.Direction](0).IsSingleConnectedComponent())
	assert.True(t, relation.New[geometry.Direction](1).IsSingleConnectedComponent())
}

func TestIsSingleConnectedComponentChain(t *testing.T) {
	// Invariant 5: a connected chain 0-1-2-3 is a single component.
	m := relation.New[geometry.Direction](4)
	m.Set(0, 1, geometry.LeftOf)
	m.Set(1, 2, geometry.LeftOf)
	m.Set(2, 3, geometry.LeftOf)
	assert.True(t, m.IsSingleConnectedComponent())
}

func TestIsSingleConnectedComponentDisjointPairs(t *testing.T) {
	m := relation.New[geometry.Direction](4)
	m.Set(0, 1, geometry.LeftOf)
	m.Set(2, 3, geometry.Above)
	assert.False(t, m.IsSingleConnectedComponent())
}

func TestIsSingleConnectedComponentCycle(t *testing.T) {
	m := relation.New[geometry.Direction](3)
	m.Set(0, 1, geometry.LeftOf)
	m.Set(1, 2, geometry.Under)
	m.Set(2, 0, geometry.RightOf)
	assert.True(t, m.IsSingleConnectedComponent())
}

func TestIsSingleConnectedComponentIsolatedVertex(t *testing.T) {
	m := relation.New[geometry.Direction](3)
	m.Set(0, 1, geometry.LeftOf)
	assert.False(t, m.IsSingleConnectedComponent())
}
