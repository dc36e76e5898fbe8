// Package backend defines the seam between the controller and a concrete
// windowing-server session: querying the current output topology, waiting
// for topology-change events, and pushing a computed layout back. Only the
// interface shape is specified (spec §6); this package also ships Fake, an
// in-memory implementation for tests and for cmd/slamd's demo mode.
package backend
