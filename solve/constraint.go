package solve

import "math"

// Range is an inclusive integer range [Min, Max]. The zero value is not
// meaningful on its own; use Unconstrained for "no bound yet".
type Range struct {
	Min, Max int64
}

// Unconstrained is the default range: every integer satisfies it.
var Unconstrained = Range{Min: math.MinInt64 / 2, Max: math.MaxInt64 / 2}

// Constraint is a per-variable bound: a Range on that variable's value.
type Constraint = Range

// Intersect returns the intersection of r and o, and whether it is
// non-empty (Min<=Max).
func (r Range) Intersect(o Range) (Range, bool) {
	lo, hi := r.Min, r.Max
	if o.Min > lo {
		lo = o.Min
	}
	if o.Max < hi {
		hi = o.Max
	}
	return Range{Min: lo, Max: hi}, lo <= hi
}

// Shift returns r offset by delta.
func (r Range) Shift(delta int64) Range {
	return Range{Min: r.Min + delta, Max: r.Max + delta}
}

// Negate returns the range of -x for x in r.
func (r Range) Negate() Range {
	return Range{Min: -r.Max, Max: -r.Min}
}

// DualRange is the payload of the auxiliary relation.Matrix[DualRange]:
// for a dual entry (neg, pos), it bounds pos-neg. Its Inverse swaps sign
// and bounds, as required by relation.InvertibleRelation.
type DualRange struct {
	Range
}

// Inverse returns the range of neg-pos given a range on pos-neg.
func (d DualRange) Inverse() DualRange {
	return DualRange{d.Range.Negate()}
}
