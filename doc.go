// Package qroute learns routes through small location graphs with tabular
// Q-learning.
//
// A warehouse floor or any other set of named locations is described
// as a reward model: which moves are allowed and what each move is worth. A
// value table is trained on that model by uniform random exploration, and the
// greedy walk over the learned values gives the route to a goal.
//
// Packages:
//
//	matrix/    dense row-major float64 matrices with validated access and row argmax
//	graph/     locations, the location↔state index and the reward model
//	qlearn/    training parameters, the TD update and the value table
//	route/     greedy route reconstruction with cycle and step guards
//	planner/   per-goal reward shaping, cached training and chained routes
//	bfs/       hop distances and reachability over a reward model
//	gridgraph/ floor plans drawn as integer grids, converted to reward models
//
// Quick example (the reference twelve-location warehouse):
//
//	A───B───C   D
//	    │   │   │
//	E   F   G───H
//	│   │       │
//	I───J───K───L
//
//	m, _ := graph.Warehouse()                         // G→G carries the 1000 bonus
//	vt, _ := qlearn.Train(m, qlearn.WithSeed(42))
//	path, _ := route.Route(vt, "K", "G")              // e.g. [K L H G]
//
// Arbitrary goals without hand-editing rewards:
//
//	base, _ := graph.WarehouseAisles()
//	p, _ := planner.New(base)
//	path, _ := p.PlanVia("E", "B", "G")
//
// Training is deterministic for a given seed. Logging goes through
// logrus.FieldLogger and is silent unless a logger is supplied.
//
//	go get github.com/katalvlaran/qroute
package qroute
