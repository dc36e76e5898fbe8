package solve

// Expression is a constant plus an optional variable: value = Const, or
// value = Const + the current value of variable Var. Var is -1 when the
// expression is a pure constant (e.g. an anchored coordinate).
type Expression struct {
	Const int64
	Var   int
}

// constExpr builds a pure-constant Expression.
func constExpr(v int64) Expression {
	return Expression{Const: v, Var: -1}
}

// varExpr builds an Expression referencing variable v with no offset.
func varExpr(v int) Expression {
	return Expression{Const: 0, Var: v}
}

// IsConstant reports whether e carries no live variable.
func (e Expression) IsConstant() bool {
	return e.Var < 0
}

// CellRef is a handle to a coordinate expression owned by a System: the
// x or y coordinate of one output. Cells are never copied out of the
// System — every read goes through System.Get, so substitution/merge
// during preprocessing is visible to every holder of a CellRef.
type CellRef int
