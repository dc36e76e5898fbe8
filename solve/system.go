package solve

import "github.com/fgindraud/slam/relation"

// System is the preprocessing engine from spec §4.E: a flat vector of
// per-variable Constraint ranges, an auxiliary relation.Matrix[DualRange]
// of pairwise dual constraints, and a set of coordinate cells that always
// read back the current (possibly substituted or merged) Expression for
// a coordinate.
type System struct {
	cells       []Expression
	constraints []Constraint
	duals       *relation.Matrix[DualRange]
}

// NewSystem returns an empty System.
func NewSystem() *System {
	return &System{duals: relation.New[DualRange](0)}
}

// NewConstCell registers a constant coordinate (an anchor) and returns its
// CellRef.
func (s *System) NewConstCell(value int64) CellRef {
	s.cells = append(s.cells, constExpr(value))
	return CellRef(len(s.cells) - 1)
}

// NewVariableCell registers a fresh, unconstrained free variable and a
// coordinate cell referencing it, and returns its CellRef.
func (s *System) NewVariableCell() CellRef {
	v := s.newVariable()
	s.cells = append(s.cells, varExpr(v))
	return CellRef(len(s.cells) - 1)
}

func (s *System) newVariable() int {
	idx := len(s.constraints)
	s.constraints = append(s.constraints, Unconstrained)
	s.duals.AddElement()
	return idx
}

// Get returns the current Expression for a cell.
func (s *System) Get(ref CellRef) Expression {
	return s.cells[ref]
}

// NewOffsetCell registers a new cell equal to base+delta: a constant shift
// of an existing cell, aliasing the same variable (if any) rather than
// allocating a fresh one. Used to express sums like "x_i + size_i" without
// introducing a spurious extra degree of freedom.
func (s *System) NewOffsetCell(base CellRef, delta int64) CellRef {
	e := s.cells[base]
	s.cells = append(s.cells, Expression{Const: e.Const + delta, Var: e.Var})
	return CellRef(len(s.cells) - 1)
}

// NumVariables returns how many free variables remain live.
func (s *System) NumVariables() int {
	return len(s.constraints)
}

// VariableConstraint returns the current bound on variable v.
func (s *System) VariableConstraint(v int) Constraint {
	return s.constraints[v]
}

// Duals exposes the dual-constraint matrix, keyed by live variable index.
func (s *System) Duals() *relation.Matrix[DualRange] {
	return s.duals
}

// AddEqualityConstraint enforces value(lhs) == value(rhs), per spec
// §4.E's three cases (both constant, one variable, two variables).
func (s *System) AddEqualityConstraint(lhs, rhs CellRef) error {
	el, er := s.cells[lhs], s.cells[rhs]

	switch {
	case el.IsConstant() && er.IsConstant():
		if el.Const != er.Const {
			return solveErrorf("AddEqualityConstraint", ErrInfeasible)
		}
		return nil

	case el.IsConstant():
		// er.Var_value + er.Const == el.Const => er.Var_value == el.Const - er.Const
		return s.substituteVariable(er.Var, el.Const-er.Const)

	case er.IsConstant():
		return s.substituteVariable(el.Var, er.Const-el.Const)

	default:
		va, vb := el.Var, er.Var
		if va == vb {
			if el.Const != er.Const {
				return solveErrorf("AddEqualityConstraint", ErrInfeasible)
			}
			return nil
		}
		// keep the lower-indexed variable; express the other as kept+offset.
		var keep, removed int
		var offset int64
		if va < vb {
			keep, removed, offset = va, vb, el.Const-er.Const
		} else {
			keep, removed, offset = vb, va, er.Const-el.Const
		}
		return s.mergeVariables(keep, removed, offset)
	}
}

// AddDualConstraint enforces range.Min <= value(pos) - value(neg) <= range.Max.
func (s *System) AddDualConstraint(neg, pos CellRef, rng Range) error {
	en, ep := s.cells[neg], s.cells[pos]
	shift := ep.Const - en.Const // constant part of value(pos)-value(neg)

	switch {
	case en.IsConstant() && ep.IsConstant():
		diff := ep.Const - en.Const
		if diff < rng.Min || diff > rng.Max {
			return solveErrorf("AddDualConstraint", ErrInfeasible)
		}
		return nil

	case en.IsConstant():
		// pos.Var value + shift in [rng.Min, rng.Max]
		return s.intersectConstraint(ep.Var, rng.Shift(-shift))

	case ep.IsConstant():
		// shift - neg.Var value in [rng.Min, rng.Max]  =>  neg.Var value in [shift-rng.Max, shift-rng.Min]
		return s.intersectConstraint(en.Var, Range{Min: shift - rng.Max, Max: shift - rng.Min})

	default:
		vn, vp := en.Var, ep.Var
		if vn == vp {
			diff := ep.Const - en.Const
			if diff < rng.Min || diff > rng.Max {
				return solveErrorf("AddDualConstraint", ErrInfeasible)
			}
			return nil
		}
		delta := rng.Shift(-shift)
		if existing, ok := s.duals.Get(vn, vp); ok {
			merged, ok2 := existing.Range.Intersect(delta)
			if !ok2 {
				return solveErrorf("AddDualConstraint", ErrInfeasible)
			}
			s.duals.Set(vn, vp, DualRange{merged})
		} else {
			s.duals.Set(vn, vp, DualRange{delta})
		}
		return nil
	}
}

func (s *System) intersectConstraint(v int, bound Range) error {
	merged, ok := s.constraints[v].Intersect(bound)
	if !ok {
		return solveErrorf("intersectConstraint", ErrInfeasible)
	}
	s.constraints[v] = merged
	return nil
}

// substituteVariable fixes variable `removed` to a constant value,
// propagating the substitution through every cell that references it and
// folding any dual constraints on `removed` into the surviving variables'
// mono constraints.
func (s *System) substituteVariable(removed int, value int64) error {
	if bound := s.constraints[removed]; value < bound.Min || value > bound.Max {
		return solveErrorf("substituteVariable", ErrInfeasible)
	}

	n := s.duals.N()
	for u := 0; u < n; u++ {
		if u == removed {
			continue
		}
		r, ok := s.duals.Get(u, removed)
		if !ok {
			continue
		}
		// u + r.Min <= removed <= u + r.Max  =>  u in [value-r.Max, value-r.Min]
		bound := Range{Min: value - r.Max, Max: value - r.Min}
		if err := s.intersectConstraint(u, bound); err != nil {
			return err
		}
	}

	for i, c := range s.cells {
		if c.Var == removed {
			s.cells[i] = constExpr(c.Const + value)
		}
	}
	s.removeVariable(removed)
	return nil
}

// mergeVariables merges `removed` into `keep` (keep < removed), where
// value(removed) == value(keep) + offset, intersecting mono constraints
// and transporting dual constraints onto `keep`.
func (s *System) mergeVariables(keep, removed int, offset int64) error {
	removedBound := s.constraints[removed].Shift(-offset)
	merged, ok := s.constraints[keep].Intersect(removedBound)
	if !ok {
		return solveErrorf("mergeVariables", ErrInfeasible)
	}
	// A dual constraint directly between keep and removed bounds
	// removed-keep, which the merge fixes to offset.
	if r, ok := s.duals.Get(keep, removed); ok && (offset < r.Min || offset > r.Max) {
		return solveErrorf("mergeVariables", ErrInfeasible)
	}
	s.constraints[keep] = merged

	n := s.duals.N()
	for u := 0; u < n; u++ {
		if u == removed || u == keep {
			continue
		}
		r, ok := s.duals.Get(u, removed)
		if !ok {
			continue
		}
		// u + r.Min <= removed <= u + r.Max, removed = keep+offset
		// => u + (r.Min-offset) <= keep <= u + (r.Max-offset)
		transported := DualRange{r.Range.Shift(-offset)}
		if existing, ok := s.duals.Get(u, keep); ok {
			mergedRange, ok2 := existing.Range.Intersect(transported.Range)
			if !ok2 {
				return solveErrorf("mergeVariables", ErrInfeasible)
			}
			s.duals.Set(u, keep, DualRange{mergedRange})
		} else {
			s.duals.Set(u, keep, transported)
		}
	}

	for i, c := range s.cells {
		if c.Var == removed {
			s.cells[i] = Expression{Const: c.Const + offset, Var: keep}
		}
	}
	s.removeVariable(removed)
	return nil
}

// removeVariable physically removes variable `removed` from constraints
// and the dual matrix, shifting every higher-indexed variable reference
// (in cells and nowhere else, since constraints/duals already reindex
// themselves) down by one. Cells still referencing `removed` directly are
// a caller bug — substituteVariable/mergeVariables always rewrite them
// first.
func (s *System) removeVariable(removed int) {
	s.duals.RemoveElement(removed)
	s.constraints = append(s.constraints[:removed], s.constraints[removed+1:]...)
	for i, c := range s.cells {
		if c.Var > removed {
			s.cells[i].Var--
		}
	}
}
