// Package daemon wires together the store, a Backend, and the controller
// into the process-level control loop: flag-derived Config and the Run
// entry point; signal handling and logger setup live in cmd/slamd
// (spec §6's "thin" CLI surface, out of scope
// for the core but specified here for testability). No globals: Config,
// the Backend, and the Store are threaded through explicit parameters: the
// only process-wide state is the logger, set up once in cmd/slamd.
package daemon
