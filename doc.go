// Package slam is a background agent that watches a windowing server's
// display-output topology (connected monitors, their modes, rotations,
// and on-screen positions), remembers previously-seen topologies, and
// restores the user's chosen arrangement whenever the same physical set
// of monitors reappears. When a novel set of monitors appears, it
// synthesizes a reasonable arrangement automatically.
//
// The module is organized as:
//
//	geometry/   — integer 2-D vectors, rectangles, rotation/reflection transforms, direction relations
//	relation/   — packed dense storage for an antisymmetric pairwise relation over a small index set
//	layout/     — output identity, mode, state, validated sorted collections, unsupported-layout classification
//	store/      — keyed set of layouts addressed by connected output set, crash-safe file persistence
//	solve/      — the constraint solver: per-output sizes + direction relations -> bottom-left coordinates
//	backend/    — the seam with a concrete windowing-server session, plus an in-memory Fake for tests
//	controller/ — the Waiting/Evaluating state machine tying backend, store, and solver together
//	daemon/     — process-level wiring: Config, the control loop entry point
//	cmd/slamd/  — the daemon binary: flags, logger setup, signal handling
//	cmd/slamctl/ — a read-only companion for inspecting the persistent database
package slam
