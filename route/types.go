package route

import "errors"

// Sentinel errors returned by Route.
var (
	// ErrNilTable indicates that a nil *qlearn.ValueTable was passed to Route.
	ErrNilTable = errors.New("route: value table is nil")

	// ErrNoRouteFound indicates the greedy policy does not lead to the goal:
	// it revisited a state or ran out of steps. Retraining with more
	// iterations or another seed may help.
	ErrNoRouteFound = errors.New("route: no route found")

	// ErrBadMaxSteps indicates a non-positive step bound.
	ErrBadMaxSteps = errors.New("route: MaxSteps must be positive")
)

// Options configures Route.
//
// MaxSteps  – upper bound on transitions; 0 selects N (the longest simple path).
// LegalOnly – if true, the greedy choice ignores illegal transitions.
type Options struct {
	MaxSteps  int
	LegalOnly bool
}

// Option represents a functional option for configuring Route.
type Option func(*Options)

// WithMaxSteps bounds the number of transitions. Panics if k <= 0.
func WithMaxSteps(k int) Option {
	if k <= 0 {
		panic(ErrBadMaxSteps.Error())
	}
	return func(o *Options) { o.MaxSteps = k }
}

// WithLegalOnly restricts the greedy argmax to transitions with positive
// reward. By default the whole Q row is scanned, so an all-zero row walks to
// state 0 whether or not that move is legal.
func WithLegalOnly() Option {
	return func(o *Options) { o.LegalOnly = true }
}

// DefaultOptions returns the zero configuration: MaxSteps resolved to N at
// call time, unrestricted argmax.
func DefaultOptions() Options {
	return Options{}
}
