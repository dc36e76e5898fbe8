package solve

import (
	"context"
	"math"
	"time"

	"github.com/fgindraud/slam/geometry"
	"github.com/fgindraud/slam/matrix"
	"github.com/fgindraud/slam/relation"
)

// timeBudget is the hard wall-clock cap on the projection loop (spec §4.E:
// "solver reports infeasible/unbounded/time-limit (hard cap ≈ 1 s)").
const timeBudget = time.Second

const maxProjectionIterations = 500

// Solve computes bottom-left coordinates for n outputs given their sizes
// (already adjusted for each output's Transform.SwapsAxes, as
// layout.OutputState.OccupiedRect would report) and a relation matrix of
// pairwise Directions. The largest-area output is anchored at (0,0); the
// returned slice is indexed the same way as sizes.
func Solve(ctx context.Context, sizes []geometry.Vec2d[uint32], relations *relation.Matrix[geometry.Direction]) ([]geometry.Vec2d[int32], error) {
	n := len(sizes)
	if n == 0 {
		return nil, nil
	}
	if relations.N() != n {
		return nil, solveErrorf("Solve", ErrInfeasible)
	}

	anchor := largestAreaIndex(sizes)

	systemX := NewSystem()
	systemY := NewSystem()
	cellsX := make([]CellRef, n)
	cellsY := make([]CellRef, n)
	for i := 0; i < n; i++ {
		if i == anchor {
			cellsX[i] = systemX.NewConstCell(0)
			cellsY[i] = systemY.NewConstCell(0)
			continue
		}
		cellsX[i] = systemX.NewVariableCell()
		cellsY[i] = systemY.NewVariableCell()
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dir, ok := relations.Get(i, j)
			if !ok {
				continue
			}
			if err := applyDirection(systemX, systemY, cellsX, cellsY, sizes, i, j, dir); err != nil {
				return nil, err
			}
		}
	}

	xVals, err := solveAxis(ctx, systemX, cellsX, sizes, axisX)
	if err != nil {
		return nil, err
	}
	yVals, err := solveAxis(ctx, systemY, cellsY, sizes, axisY)
	if err != nil {
		return nil, err
	}

	out := make([]geometry.Vec2d[int32], n)
	for i := 0; i < n; i++ {
		x, err := clampToInt32(xVals[i])
		if err != nil {
			return nil, err
		}
		y, err := clampToInt32(yVals[i])
		if err != nil {
			return nil, err
		}
		out[i] = geometry.V2[int32](x, y)
	}
	return out, nil
}

func clampToInt32(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, solveErrorf("Solve", ErrInfeasible)
	}
	return int32(v), nil
}

func largestAreaIndex(sizes []geometry.Vec2d[uint32]) int {
	best := 0
	var bestArea uint64
	for i, s := range sizes {
		area := uint64(s.X) * uint64(s.Y)
		if area > bestArea {
			bestArea = area
			best = i
		}
	}
	return best
}

// applyDirection adds the equality + dual constraint pair for one pairwise
// direction, per the table in spec §4.E. RightOf/Above are handled by
// swapping the pair's roles and re-applying the LeftOf/Under rule, since
// Direction.Inverse makes them exact mirror images.
func applyDirection(sx, sy *System, cellsX, cellsY []CellRef, sizes []geometry.Vec2d[uint32], i, j int, dir geometry.Direction) error {
	switch dir {
	case geometry.LeftOf:
		return applyLeftOf(sx, sy, cellsX, cellsY, sizes, i, j)
	case geometry.RightOf:
		return applyLeftOf(sx, sy, cellsX, cellsY, sizes, j, i)
	case geometry.Under:
		return applyUnder(sx, sy, cellsX, cellsY, sizes, i, j)
	case geometry.Above:
		return applyUnder(sx, sy, cellsX, cellsY, sizes, j, i)
	default:
		return solveErrorf("applyDirection", ErrInfeasible)
	}
}

// applyLeftOf encodes "lo LeftOf hi": x_lo + sx_lo == x_hi (equality), and
// y_lo - sy_hi <= y_hi <= y_lo + sy_lo (dual, orthogonal-axis overlap).
func applyLeftOf(sx, sy *System, cellsX, cellsY []CellRef, sizes []geometry.Vec2d[uint32], lo, hi int) error {
	shifted := sx.NewOffsetCell(cellsX[lo], int64(sizes[lo].X))
	if err := sx.AddEqualityConstraint(shifted, cellsX[hi]); err != nil {
		return err
	}
	return sy.AddDualConstraint(cellsY[lo], cellsY[hi], Range{
		Min: -int64(sizes[hi].Y),
		Max: int64(sizes[lo].Y),
	})
}

// applyUnder encodes "under Under above": y_under + sy_under == y_above
// (equality), and x_under - sx_above <= x_above <= x_under + sx_under (dual).
func applyUnder(sx, sy *System, cellsX, cellsY []CellRef, sizes []geometry.Vec2d[uint32], under, above int) error {
	shifted := sy.NewOffsetCell(cellsY[under], int64(sizes[under].Y))
	if err := sy.AddEqualityConstraint(shifted, cellsY[above]); err != nil {
		return err
	}
	return sx.AddDualConstraint(cellsX[under], cellsX[above], Range{
		Min: -int64(sizes[above].X),
		Max: int64(sizes[under].X),
	})
}

type axis int

const (
	axisX axis = iota
	axisY
)

// solveAxis assembles and solves the objective for one axis (x or y),
// returning each output's coordinate on that axis.
func solveAxis(ctx context.Context, s *System, cells []CellRef, sizes []geometry.Vec2d[uint32], which axis) ([]int64, error) {
	n := len(cells)
	m := s.NumVariables()

	centers := make([]centerCoeffs, n)
	areas := make([]float64, n)
	for i := 0; i < n; i++ {
		e := s.Get(cells[i])
		var half float64
		if which == axisX {
			half = float64(sizes[i].X) / 2
		} else {
			half = float64(sizes[i].Y) / 2
		}
		centers[i] = centerCoeffs{constPart: float64(e.Const) + half, varIndex: e.Var}
		areas[i] = float64(sizes[i].X) * float64(sizes[i].Y)
	}

	varValues := make([]float64, m)
	if m > 0 {
		p, q, err := buildObjective(centers, areas, m)
		if err != nil {
			return nil, err
		}
		rhs := make([]float64, m)
		for v := range rhs {
			rhs[v] = -q[v] / 2
		}
		x, err := matrix.Solve(p, rhs)
		if err != nil {
			return nil, solveErrorf("solveAxis", ErrInfeasible)
		}
		varValues = x

		if err := projectOntoConstraints(ctx, s, varValues); err != nil {
			return nil, err
		}
	}

	rounded := make([]int64, m)
	for v := 0; v < m; v++ {
		rounded[v] = int64(math.Round(varValues[v]))
	}

	out := make([]int64, n)
	for i, ref := range cells {
		e := s.Get(ref)
		if e.IsConstant() {
			out[i] = e.Const
			continue
		}
		out[i] = e.Const + rounded[e.Var]
	}
	return out, nil
}

// projectOntoConstraints alternately clamps each variable into its own
// box constraint and pulls dual-constrained pairs back into range, until a
// fixpoint or the iteration/time budget is spent.
func projectOntoConstraints(ctx context.Context, s *System, x []float64) error {
	m := len(x)
	duals := s.Duals()
	start := time.Now()

	for iter := 0; iter < maxProjectionIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return solveErrorf("projectOntoConstraints", ErrInfeasible)
		}
		if time.Since(start) > timeBudget {
			return solveErrorf("projectOntoConstraints", ErrInfeasible)
		}

		changed := false
		for v := 0; v < m; v++ {
			b := s.VariableConstraint(v)
			if x[v] < float64(b.Min) {
				x[v] = float64(b.Min)
				changed = true
			} else if x[v] > float64(b.Max) {
				x[v] = float64(b.Max)
				changed = true
			}
		}
		for u := 0; u < m; u++ {
			for v := u + 1; v < m; v++ {
				r, ok := duals.Get(u, v)
				if !ok {
					continue
				}
				diff := x[v] - x[u]
				switch {
				case diff < float64(r.Min):
					shift := (float64(r.Min) - diff) / 2
					x[u] -= shift
					x[v] += shift
					changed = true
				case diff > float64(r.Max):
					shift := (diff - float64(r.Max)) / 2
					x[u] += shift
					x[v] -= shift
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}
	}
	return solveErrorf("projectOntoConstraints", ErrInfeasible)
}
