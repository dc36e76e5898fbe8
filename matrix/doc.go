// Package matrix provides the Dense row-major matrix type and the small
// set of linear-algebra kernels (LU decomposition, linear solve) that
// package solve builds its quadratic-program assembly and normal-equation
// solve on top of. It is adapted from a general-purpose graph/matrix
// library's Dense type and LU kernel, trimmed to the operations solve/
// actually calls.
package matrix
