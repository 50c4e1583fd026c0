package planner

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qroute/qlearn"
	"github.com/katalvlaran/qroute/route"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilModel indicates that a nil base model was passed to New.
	ErrNilModel = errors.New("planner: base model is nil")

	// ErrBadGoalReward indicates a goal reward that is not finite and positive.
	ErrBadGoalReward = errors.New("planner: goal reward must be finite and positive")
)

// DefaultGoalReward is the self-loop bonus that makes a location the goal.
const DefaultGoalReward = 1000.0

// Option configures a Planner.
type Option func(*Planner)

// WithGoalReward sets the bonus written on the goal's self-loop.
// Panics if r is not finite and positive.
func WithGoalReward(r float64) Option {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		panic(ErrBadGoalReward.Error())
	}
	return func(p *Planner) { p.goalReward = r }
}

// WithParams sets the training parameters. The Seed field is ignored; use
// WithSeed for the planner's base seed. Values are validated by New.
func WithParams(params qlearn.Params) Option {
	return func(p *Planner) { p.params = params }
}

// WithSeed sets the base seed from which each goal's stream is derived.
func WithSeed(seed int64) Option {
	return func(p *Planner) { p.seed = seed }
}

// WithLogger routes planning and training logs to l. nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRouteOptions forwards opts to every route.Route call.
func WithRouteOptions(opts ...route.Option) Option {
	return func(p *Planner) { p.routeOpts = append(p.routeOpts, opts...) }
}
