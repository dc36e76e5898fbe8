package solve

import "github.com/fgindraud/slam/matrix"

// objective is the assembled quadratic form minimize(x) = xᵀPx + qᵀx over
// the m live free variables, per spec §4.E: each output contributes a
// residual `A_total·c_i − Σ_j a_j·c_j`, and the expansion
// (XᵀC + c)² = Xᵀ(CCᵀ)X + 2c·CᵀX + c² folds additively into P and q.
type objective struct {
	P *matrix.Dense
	q []float64
}

// centerCoeffs describes one output's center coordinate (x or y) in terms
// of the live free variables: constPart + x_varIndex, or just constPart
// when varIndex is -1.
// Built once per axis from the System's resolved cell Expressions.
type centerCoeffs struct {
	constPart float64
	varIndex  int // -1 if this output's coordinate is a pure constant
}

// buildObjective assembles P and q for one axis (x or y) given, for each
// output i, its center's Expression (constPart + optional free variable)
// and its area weight. Residual_i = totalArea·center_i − Σ_j area_j·center_j.
func buildObjective(centers []centerCoeffs, areas []float64, numVars int) (*matrix.Dense, []float64, error) {
	p, err := matrix.NewZeros(numVars, numVars)
	if err != nil {
		return nil, nil, solveErrorf("buildObjective", err)
	}
	q := make([]float64, numVars)
	if numVars == 0 {
		return p, q, nil
	}

	var totalArea float64
	for _, a := range areas {
		totalArea += a
	}

	for i := range centers {
		coeffs := make([]float64, numVars)
		if centers[i].varIndex >= 0 {
			coeffs[centers[i].varIndex] += totalArea
		}
		var constPart float64 = totalArea * centers[i].constPart
		for j := range centers {
			if centers[j].varIndex >= 0 {
				coeffs[centers[j].varIndex] -= areas[j]
			}
			constPart -= areas[j] * centers[j].constPart
		}

		for v := 0; v < numVars; v++ {
			if coeffs[v] == 0 {
				continue
			}
			q[v] += 2 * constPart * coeffs[v]
			for w := 0; w < numVars; w++ {
				if coeffs[w] == 0 {
					continue
				}
				if err := p.Add(v, w, coeffs[v]*coeffs[w]); err != nil {
					return nil, nil, solveErrorf("buildObjective", err)
				}
			}
		}
	}

	// A small ridge keeps P solvable when a free variable never appears in
	// any residual (e.g. it only ever shows up in dual constraints).
	const ridge = 1e-6
	for v := 0; v < numVars; v++ {
		if err := p.Add(v, v, ridge); err != nil {
			return nil, nil, solveErrorf("buildObjective", err)
		}
	}

	return p, q, nil
}
