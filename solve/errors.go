package solve

import (
	"errors"
	"fmt"
)

// ErrInfeasible is the single error kind surfaced for every way a layout
// can fail to solve: conflicting equalities, an empty intersected range,
// a singular normal-equation matrix, a projection loop that does not
// converge within the iteration/time budget, or coordinate overflow on
// extraction. The controller does not distinguish between them (spec §4.E).
var ErrInfeasible = errors.New("solve: infeasible")

func solveErrorf(op string, err error) error {
	return fmt.Errorf("solve: %s: %w", op, err)
}
