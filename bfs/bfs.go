package bfs

import (
	"fmt"

	"github.com/katalvlaran/qroute/graph"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	model   *graph.Model
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on m starting from start.
//
// Errors: ErrNilModel, graph.ErrUnknownLocation (wrapped), ErrOptionViolation,
// the context error on cancellation, or the OnVisit error (wrapped).
func BFS(m *graph.Model, start graph.Location, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	s, err := m.Encode(start)
	if err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	n := m.N()
	w := &walker{
		model:   m,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]graph.Location, 0, n),
			Depth:  make(map[graph.Location]int, n),
			Parent: make(map[graph.Location]graph.Location, n),
		},
	}
	w.enqueue(s, 0, start, "")

	return w.res, w.loop()
}

// enqueue marks state visited at depth d and records its parent.
func (w *walker) enqueue(state, d int, loc, parent graph.Location) {
	w.visited[state] = true
	w.res.Depth[loc] = d
	if parent != "" {
		w.res.Parent[loc] = parent
	}
	w.queue = append(w.queue, queueItem{state: state, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the state in Order, runs OnVisit and enqueues unseen
// neighbours within MaxDepth.
func (w *walker) visit(item queueItem) error {
	loc, err := w.model.Decode(item.state)
	if err != nil {
		return err
	}
	w.res.Order = append(w.res.Order, loc)
	if err = w.opts.OnVisit(loc, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", loc, err)
	}

	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	playable, err := w.model.Playable(item.state)
	if err != nil {
		return err
	}
	var (
		j   int
		nbr graph.Location
	)
	for _, j = range playable {
		if j == item.state || w.visited[j] {
			continue
		}
		if nbr, err = w.model.Decode(j); err != nil {
			return err
		}
		if !w.opts.FilterNeighbor(loc, nbr) {
			continue
		}
		w.enqueue(j, next, nbr, loc)
	}

	return nil
}

// Distance returns the hop distance from start to goal, or ErrUnreachable.
func Distance(m *graph.Model, start, goal graph.Location) (int, error) {
	res, err := BFS(m, start)
	if err != nil {
		return 0, err
	}
	if !res.Reached(goal) {
		if _, err = m.Encode(goal); err != nil {
			return 0, fmt.Errorf("bfs: goal: %w", err)
		}
		return 0, fmt.Errorf("%w: %s from %s", ErrUnreachable, goal, start)
	}

	return res.Depth[goal], nil
}
