// Package relation implements RelationMatrix, a packed dense store for an
// antisymmetric pairwise relation over a small, dynamically resized index
// set. slam uses it twice: keyed by geometry.Direction to track how
// outputs relate to each other in a layout, and keyed by the solver's
// dual-constraint range to track coupled box constraints during solving.
package relation
