// Package solve is the constraint solver: given per-output sizes and a
// relation.Matrix[geometry.Direction], it derives bottom-left integer
// coordinates satisfying every adjacency constraint while minimizing a
// centrality objective, or reports the problem infeasible.
package solve
