package matrix

// Operation name constants for unified error wrapping.
const (
	opLU    = "LU"
	opSolve = "Solve"
)

// LU computes the Doolittle decomposition A = L*U for a square matrix,
// without pivoting. Determinism is preferred over numerical robustness:
// slam's QP systems are small (a handful of free coordinates) and built
// from a positive-semi-definite Gram matrix regularized by objective.go,
// so a pivot-free factorization is adequate.
//
// Contract: m non-nil and square.
// Complexity: Time O(n^3), Space O(n^2).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	dm, fast := m.(*Dense)
	for i := 0; i < n; i++ {
		// U[i][j] for j >= i
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			var aij float64
			if fast {
				aij = dm.data[i*n+j]
			} else {
				aij, _ = m.At(i, j)
			}
			u.data[i*n+j] = aij - sum
		}
		pivot := u.data[i*n+i]
		if pivot == 0 {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// L[j][i] for j > i
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			var aji float64
			if fast {
				aji = dm.data[j*n+i]
			} else {
				aji, _ = m.At(j, i)
			}
			l.data[j*n+i] = (aji - sum) / pivot
		}
	}

	return l, u, nil
}

// Solve returns x such that A*x = b, via LU decomposition followed by
// forward substitution (L*y=b) and back substitution (U*x=y).
//
// Contract: A is square n×n, len(b) == n.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if len(b) != n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	l, u, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Forward substitution: L*y = b (L has unit diagonal).
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= l.data[i*n+k] * y[k]
		}
		y[i] = sum
	}

	// Back substitution: U*x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= u.data[i*n+k] * x[k]
		}
		pivot := u.data[i*n+i]
		if pivot == 0 {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		x[i] = sum / pivot
	}

	return x, nil
}
