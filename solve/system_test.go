package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemSubstituteVariableWithConstant(t *testing.T) {
	s := NewSystem()
	a := s.NewConstCell(10)
	b := s.NewVariableCell()

	require.NoError(t, s.AddEqualityConstraint(a, b))
	assert.Equal(t, 0, s.NumVariables())
	assert.True(t, s.Get(b).IsConstant())
	assert.Equal(t, int64(10), s.Get(b).Const)
}

func TestSystemEqualityConflictingConstantsIsInfeasible(t *testing.T) {
	s := NewSystem()
	a := s.NewConstCell(10)
	b := s.NewConstCell(20)
	assert.ErrorIs(t, s.AddEqualityConstraint(a, b), ErrInfeasible)
}

func TestSystemMergeTwoVariables(t *testing.T) {
	s := NewSystem()
	a := s.NewVariableCell()
	b := s.NewVariableCell()
	require.Equal(t, 2, s.NumVariables())

	// a + 5 == b  =>  b = a + 5, merged into one variable.
	shifted := s.NewOffsetCell(a, 5)
	require.NoError(t, s.AddEqualityConstraint(shifted, b))
	assert.Equal(t, 1, s.NumVariables())
	assert.Equal(t, s.Get(a).Var, s.Get(b).Var)
	assert.Equal(t, int64(5), s.Get(b).Const-s.Get(a).Const)
}

func TestSystemOffsetCellPreservesVariableAliasing(t *testing.T) {
	s := NewSystem()
	a := s.NewVariableCell()
	shifted := s.NewOffsetCell(a, 100)
	assert.Equal(t, s.Get(a).Var, s.Get(shifted).Var)
	assert.Equal(t, int64(100), s.Get(shifted).Const-s.Get(a).Const)
}

func TestSystemDualConstraintBothConstant(t *testing.T) {
	s := NewSystem()
	a := s.NewConstCell(0)
	b := s.NewConstCell(5)
	assert.NoError(t, s.AddDualConstraint(a, b, Range{Min: 0, Max: 10}))
	assert.ErrorIs(t, s.AddDualConstraint(a, b, Range{Min: 10, Max: 20}), ErrInfeasible)
}

func TestSystemDualConstraintFoldsIntoMonoWhenOneSideConstant(t *testing.T) {
	s := NewSystem()
	a := s.NewConstCell(0)
	b := s.NewVariableCell()

	require.NoError(t, s.AddDualConstraint(a, b, Range{Min: -10, Max: 20}))
	bound := s.VariableConstraint(s.Get(b).Var)
	assert.Equal(t, Range{Min: -10, Max: 20}, bound)
}

func TestSystemDualConstraintStoredInMatrixForTwoVariables(t *testing.T) {
	s := NewSystem()
	a := s.NewVariableCell()
	b := s.NewVariableCell()

	require.NoError(t, s.AddDualConstraint(a, b, Range{Min: -10, Max: 20}))
	r, ok := s.Duals().Get(s.Get(a).Var, s.Get(b).Var)
	require.True(t, ok)
	assert.Equal(t, Range{Min: -10, Max: 20}, r.Range)
}

func TestSystemSubstituteFoldsDualIntoSurvivingMono(t *testing.T) {
	s := NewSystem()
	u := s.NewVariableCell()
	v := s.NewVariableCell()

	require.NoError(t, s.AddDualConstraint(u, v, Range{Min: 0, Max: 100}))
	// Now pin v to a constant: u's bound should absorb the dual constraint.
	c := s.NewConstCell(50)
	require.NoError(t, s.AddEqualityConstraint(c, v))

	assert.Equal(t, 1, s.NumVariables())
	bound := s.VariableConstraint(s.Get(u).Var)
	// u + [0,100] contains v=50  =>  u in [50-100, 50-0] = [-50, 50]
	assert.Equal(t, Range{Min: -50, Max: 50}, bound)
}
