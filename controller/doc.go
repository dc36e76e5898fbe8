// Package controller implements the event-driven Waiting/Evaluating state
// machine (spec §4.F) that ties the backend, the persistent store, and the
// constraint solver together: it observes topology-change events, decides
// whether to ignore, store, apply, or synthesize a layout, and keeps the
// single "last observed" layout across iterations.
package controller
