// Package graph defines the location graph that Q-learning explores: the
// bidirectional mapping between symbolic locations and dense state indices,
// and the reward matrix encoding which transitions are legal.
//
// This file declares Location, Edge, Option, the sentinel errors and the
// documented defaults.
//
// Errors:
//
//	ErrConfiguration     - umbrella sentinel for every malformed definition.
//	ErrEmptyLocation     - a declared location is the empty string.
//	ErrDuplicateLocation - a location is declared twice.
//	ErrCountMismatch     - declared count N differs from the distinct locations.
//	ErrUnknownLocation   - an edge or query references an undeclared location.
//	ErrBadReward         - an edge reward is negative, NaN or ±Inf.
//	ErrDeadEnd           - a state has no legal outgoing transition.
//	ErrStateOutOfRange   - a state index is outside [0, N).
//	ErrNilModel          - a nil *Model was used.
package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrConfiguration marks a malformed graph definition. Every construction
	// failure matches it via errors.Is, together with the specific sentinel(s)
	// describing each violation.
	ErrConfiguration = errors.New("graph: configuration error")

	// ErrEmptyLocation indicates a declared location is the empty string.
	ErrEmptyLocation = errors.New("graph: location is empty")

	// ErrDuplicateLocation indicates a location is declared more than once.
	ErrDuplicateLocation = errors.New("graph: duplicate location")

	// ErrCountMismatch indicates N does not match the number of distinct locations.
	ErrCountMismatch = errors.New("graph: location count mismatch")

	// ErrUnknownLocation indicates a reference to a location outside the declared set.
	ErrUnknownLocation = errors.New("graph: unknown location")

	// ErrBadReward indicates an edge reward that is negative, NaN or ±Inf.
	ErrBadReward = errors.New("graph: reward must be finite and positive")

	// ErrDeadEnd indicates a state without any legal outgoing transition.
	// Training samples every state as "current", so dead ends are rejected.
	ErrDeadEnd = errors.New("graph: state has no legal transition")

	// ErrStateOutOfRange indicates a state index outside [0, N).
	ErrStateOutOfRange = errors.New("graph: state index out of range")

	// ErrNilModel indicates that a nil *Model was passed or used as receiver.
	ErrNilModel = errors.New("graph: model is nil")
)

// Location is an opaque symbolic identifier of a place in the graph
// (e.g. a warehouse bay "A").
type Location string

// Edge declares a transition between two locations and its immediate reward.
//
// An undirected edge (Directed == false, unless the graph default says
// otherwise) is written in both directions with the same reward; self-loops
// are written once. A zero Reward means "use the graph's default reward".
type Edge struct {
	// From is the source location.
	From Location

	// To is the destination location.
	To Location

	// Reward is the immediate reward of taking From→To. Zero selects the default.
	Reward float64

	// Directed makes this edge one-way regardless of the graph default.
	Directed bool
}

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultDirected controls whether edges are one-way by default.
	// false ⇒ every edge is mirrored (except self-loops).
	DefaultDirected = false

	// DefaultReward is the reward written for edges declared with Reward == 0.
	DefaultReward = 1.0
)

const (
	panicDefaultRewardInvalid = "graph: WithDefaultReward: reward must be finite and > 0"
)

// Option configures how edge declarations are turned into a reward matrix.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	directed      bool    // DefaultDirected
	defaultReward float64 // DefaultReward
}

// WithDirected sets the default directedness for all declared edges
// (true = one-way, false = mirrored). Edge.Directed=true always wins.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithDefaultReward sets the reward used for edges declared with Reward == 0.
// Panics if r is not finite and positive (programmer error).
func WithDefaultReward(r float64) Option {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		panic(panicDefaultRewardInvalid)
	}

	return func(o *options) { o.defaultReward = r }
}

// gatherOptions resolves the defaults and applies opts in order.
func gatherOptions(opts ...Option) options {
	o := options{
		directed:      DefaultDirected,
		defaultReward: DefaultReward,
	}
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
