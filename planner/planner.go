package planner

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qroute/bfs"
	"github.com/katalvlaran/qroute/graph"
	"github.com/katalvlaran/qroute/qlearn"
	"github.com/katalvlaran/qroute/route"
)

// Planner answers route queries over a base model.
type Planner struct {
	base       *graph.Model
	goalReward float64
	params     qlearn.Params
	seed       int64
	logger     logrus.FieldLogger
	routeOpts  []route.Option

	mu     sync.Mutex
	tables map[int]*goalTable // goal state → trained table
}

// goalTable is the lazily trained table of one goal.
type goalTable struct {
	once sync.Once
	vt   *qlearn.ValueTable
	err  error
}

// New creates a planner over base. base is typically a model without any goal
// bonus (see graph.WarehouseAisles); existing rewards are kept as they are.
//
// Errors: ErrNilModel, and the qlearn.Params validation sentinels.
func New(base *graph.Model, opts ...Option) (*Planner, error) {
	if base == nil {
		return nil, ErrNilModel
	}
	p := &Planner{
		base:       base,
		goalReward: DefaultGoalReward,
		params:     qlearn.DefaultParams(),
		logger:     qlearn.NewNullLogger(),
		tables:     make(map[int]*goalTable, base.N()),
	}
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(p)
		}
	}
	if err := p.params.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Table returns the value table trained towards goal, training it on first use.
// Errors: graph.ErrUnknownLocation, training errors.
func (p *Planner) Table(goal graph.Location) (*qlearn.ValueTable, error) {
	g, err := p.base.Encode(goal)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	entry, ok := p.tables[g]
	if !ok {
		entry = &goalTable{}
		p.tables[g] = entry
	}
	p.mu.Unlock()

	entry.once.Do(func() {
		entry.vt, entry.err = p.train(goal, g)
	})

	return entry.vt, entry.err
}

// train shapes the base model for goal and learns its table.
func (p *Planner) train(goal graph.Location, g int) (*qlearn.ValueTable, error) {
	shaped, err := p.base.WithReward(goal, goal, p.goalReward)
	if err != nil {
		return nil, err
	}

	params := p.params
	params.Seed = qlearn.DeriveSeed(p.seed, uint64(g))

	return qlearn.Train(shaped,
		qlearn.WithParams(params),
		qlearn.WithLogger(p.logger.WithField("goal", string(goal))),
	)
}

// Plan returns the learned route from start to goal.
//
// A goal that cannot be reached from start fails with bfs.ErrUnreachable
// before any training happens.
//
// Errors: graph.ErrUnknownLocation, bfs.ErrUnreachable, route.ErrNoRouteFound,
// training errors.
func (p *Planner) Plan(start, goal graph.Location) ([]graph.Location, error) {
	shortest, err := bfs.Distance(p.base, start, goal)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	vt, err := p.Table(goal)
	if err != nil {
		return nil, fmt.Errorf("planner: goal %s: %w", goal, err)
	}

	fields := logrus.Fields{
		"start": string(start),
		"goal":  string(goal),
		"run":   vt.RunID().String(),
	}
	path, err := route.Route(vt, start, goal, p.routeOpts...)
	if err != nil {
		p.logger.WithFields(fields).WithError(err).Warn("planner: no route")
		return nil, fmt.Errorf("planner: %w", err)
	}

	fields["hops"] = len(path) - 1
	fields["shortest"] = shortest
	p.logger.WithFields(fields).Debug("planner: route planned")

	return path, nil
}

// PlanVia returns the route start → via → goal: the plan to via followed by
// the plan from via, with via listed once.
//
// Errors: as Plan, for either leg.
func (p *Planner) PlanVia(start, via, goal graph.Location) ([]graph.Location, error) {
	first, err := p.Plan(start, via)
	if err != nil {
		return nil, fmt.Errorf("planner: leg %s→%s: %w", start, via, err)
	}
	second, err := p.Plan(via, goal)
	if err != nil {
		return nil, fmt.Errorf("planner: leg %s→%s: %w", via, goal, err)
	}

	path := make([]graph.Location, 0, len(first)+len(second)-1)
	path = append(path, first...)
	path = append(path, second[1:]...)

	return path, nil
}
