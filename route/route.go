package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qroute/graph"
	"github.com/katalvlaran/qroute/qlearn"
)

// Route returns the greedy path from start to goal over vt.
//
// Returns:
//
//   - path: start, every location stepped on, goal. start == goal yields [start]
//     without consulting the table.
//   - err:  ErrNilTable, graph.ErrUnknownLocation (wrapped), ErrNoRouteFound.
//
// Preconditions and validation (in order):
//  1. vt must be non-nil (ErrNilTable).
//  2. start and goal must be declared locations (graph.ErrUnknownLocation).
//
// Complexity:
//
//   - Time:  O(N·MaxSteps)  (row scan per step)
//   - Space: O(N)
func Route(vt *qlearn.ValueTable, start, goal graph.Location, opts ...Option) ([]graph.Location, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// 2) Validate inputs.
	if vt == nil {
		return nil, ErrNilTable
	}
	m := vt.Model()
	cur, err := m.Encode(start)
	if err != nil {
		return nil, fmt.Errorf("route: start: %w", err)
	}
	target, err := m.Encode(goal)
	if err != nil {
		return nil, fmt.Errorf("route: goal: %w", err)
	}

	// 3) Trivial route: the loop condition is checked before acting.
	path := []graph.Location{start}
	if cur == target {
		return path, nil
	}

	w := walker{vt: vt, legalOnly: cfg.LegalOnly}
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = m.N()
	}

	// 4) Greedy walk with visited-state guard.
	visited := make([]bool, m.N())
	visited[cur] = true
	var (
		step, next int
		loc        graph.Location
	)
	for step = 0; step < maxSteps; step++ {
		if next, err = w.next(cur); err != nil {
			return nil, err
		}
		if loc, err = m.Decode(next); err != nil {
			return nil, err
		}
		path = append(path, loc)

		if next == target {
			return path, nil
		}
		if visited[next] {
			return nil, fmt.Errorf("%w: %s→%s cycles at %s (%s)", ErrNoRouteFound, start, goal, loc, joinPath(path))
		}
		visited[next] = true
		cur = next
	}

	return nil, fmt.Errorf("%w: %s→%s exceeded %d steps (%s)", ErrNoRouteFound, start, goal, maxSteps, joinPath(path))
}

// walker picks greedy transitions out of a value table.
type walker struct {
	vt        *qlearn.ValueTable
	legalOnly bool
}

// next returns the greedy successor of state i.
func (w walker) next(i int) (int, error) {
	if w.legalOnly {
		return w.vt.ArgMaxLegal(i)
	}
	return w.vt.ArgMax(i)
}

// joinPath renders a path as "A→B→C" for error messages.
func joinPath(path []graph.Location) string {
	parts := make([]string, len(path))
	var k int
	for k = range path {
		parts[k] = string(path[k])
	}

	return strings.Join(parts, "→")
}
