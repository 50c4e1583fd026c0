// Package route turns a trained value table into a concrete path.
//
// Starting at the start location, the walk repeatedly takes the greedy
// transition (first maximum of the current Q row) until it reaches the goal.
// A learned policy carries no termination guarantee, so the walk is guarded
// twice: a visited set aborts as soon as a state repeats, and a step bound
// (default N) caps the path length. Both surface ErrNoRouteFound.
//
// Options:
//
//	– WithMaxSteps: bound on transitions taken before giving up (default N).
//	– WithLegalOnly: restrict the greedy choice to legal transitions.
//
// Errors (sentinel):
//
//	– ErrNilTable      if the value table is nil.
//	– ErrNoRouteFound  if the greedy walk cycles or exhausts its step bound.
//	– ErrBadMaxSteps   if WithMaxSteps receives a non-positive bound.
package route
