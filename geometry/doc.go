// Package geometry provides the integer 2-D primitives the rest of slam is
// built on: Vec2d pairs, the axis-aligned rectangle symmetry group
// (Transform), adjacency/overlap tests on Rect, and the Direction relation
// that the layout model and solver both key their constraints on.
package geometry
