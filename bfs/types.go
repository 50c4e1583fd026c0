// Package bfs provides tunable options and error definitions
// for breadth-first search over a graph.Model.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/qroute/graph"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilModel is returned if a nil model is passed.
	ErrNilModel = errors.New("bfs: model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo when dest was not reached.
	ErrUnreachable = errors.New("bfs: location not reached")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a location is dequeued. A non-nil error aborts
	// the search and is returned wrapped.
	OnVisit func(loc graph.Location, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor can skip transitions by returning false.
	FilterNeighbor func(cur, next graph.Location) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// background context.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(graph.Location, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ graph.Location) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(loc graph.Location, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at depth d (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips transitions cur→next when fn returns false.
func WithFilterNeighbor(fn func(cur, next graph.Location) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Start:  the origin location.
//   - Order:  locations in visit sequence.
//   - Depth:  hop distance from Start for every reached location.
//   - Parent: predecessor in the BFS tree (absent for Start).
type Result struct {
	Start  graph.Location
	Order  []graph.Location
	Depth  map[graph.Location]int
	Parent map[graph.Location]graph.Location
}

// Reached reports whether loc was reached.
func (r *Result) Reached(loc graph.Location) bool {
	_, ok := r.Depth[loc]
	return ok
}

// PathTo reconstructs the shortest path from Start to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest graph.Location) ([]graph.Location, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %s from %s", ErrUnreachable, dest, r.Start)
	}
	path := make([]graph.Location, 0, r.Depth[dest]+1)
	var (
		cur  = dest
		prev graph.Location
		ok   bool
	)
	for {
		path = append(path, cur)
		if prev, ok = r.Parent[cur]; !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
