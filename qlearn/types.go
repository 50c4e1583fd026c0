// Package qlearn defines the parameters, options and sentinel errors of the
// tabular Q-learning trainer.
//
// Options:
//
//	– WithGamma:      discount factor, 0 < gamma < 1 (default 0.75).
//	– WithAlpha:      learning rate, 0 < alpha ≤ 1 (default 0.9).
//	– WithIterations: number of update steps, ≥ 0 (default 1000).
//	– WithSeed:       seed of the exploration source; 0 selects DefaultSeed.
//	– WithRand:       explicit *rand.Rand, overrides the seed.
//	– WithParams:     all numeric parameters at once.
//	– WithLogger:     logrus.FieldLogger receiving progress; silent by default.
//
// Errors (sentinel):
//
//	– ErrNilModel       if the graph model is nil.
//	– ErrBadGamma       if gamma ∉ (0, 1).
//	– ErrBadAlpha       if alpha ∉ (0, 1].
//	– ErrBadIterations  if iterations < 0.
//	– ErrBadParams      if a settings map cannot be decoded into Params.
//	– ErrShapeMismatch  if a value matrix does not match the model.
package qlearn

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the trainer.
var (
	// ErrNilModel indicates that a nil *graph.Model was passed to Train.
	ErrNilModel = errors.New("qlearn: model is nil")

	// ErrBadGamma indicates a discount factor outside the open interval (0, 1).
	ErrBadGamma = errors.New("qlearn: gamma must be in (0, 1)")

	// ErrBadAlpha indicates a learning rate outside (0, 1].
	ErrBadAlpha = errors.New("qlearn: alpha must be in (0, 1]")

	// ErrBadIterations indicates a negative iteration budget.
	ErrBadIterations = errors.New("qlearn: iterations must be non-negative")

	// ErrBadParams indicates a settings map that cannot be decoded into Params.
	ErrBadParams = errors.New("qlearn: invalid parameter settings")

	// ErrShapeMismatch indicates a value matrix whose shape differs from N×N.
	ErrShapeMismatch = errors.New("qlearn: value matrix shape does not match model")
)

// Defaults of the reference warehouse run.
const (
	// DefaultGamma weights future value against immediate reward.
	DefaultGamma = 0.75

	// DefaultAlpha is the step size of each update.
	DefaultAlpha = 0.9

	// DefaultIterations is the fixed update budget.
	DefaultIterations = 1000

	// DefaultSeed is the seed used when callers pass seed == 0.
	DefaultSeed int64 = 1
)

// Params holds the numeric configuration of a training run.
// The mapstructure tags are the keys accepted by DecodeParams.
type Params struct {
	Gamma      float64 `mapstructure:"gamma"`
	Alpha      float64 `mapstructure:"alpha"`
	Iterations int     `mapstructure:"iterations"`
	Seed       int64   `mapstructure:"seed"`
}

// DefaultParams returns the reference configuration.
func DefaultParams() Params {
	return Params{
		Gamma:      DefaultGamma,
		Alpha:      DefaultAlpha,
		Iterations: DefaultIterations,
		Seed:       0,
	}
}

// Validate checks every numeric parameter and returns the first violation.
// Validation order: gamma → alpha → iterations.
func (p Params) Validate() error {
	if math.IsNaN(p.Gamma) || p.Gamma <= 0 || p.Gamma >= 1 {
		return fmt.Errorf("%w: got %g", ErrBadGamma, p.Gamma)
	}
	if math.IsNaN(p.Alpha) || p.Alpha <= 0 || p.Alpha > 1 {
		return fmt.Errorf("%w: got %g", ErrBadAlpha, p.Alpha)
	}
	if p.Iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrBadIterations, p.Iterations)
	}

	return nil
}

// Option represents a functional option for configuring Train.
type Option func(*config)

// config is the effective configuration of a single Train call.
type config struct {
	params Params
	rng    *rand.Rand
	logger logrus.FieldLogger
}

// WithGamma sets the discount factor. Panics if gamma ∉ (0, 1).
func WithGamma(gamma float64) Option {
	if math.IsNaN(gamma) || gamma <= 0 || gamma >= 1 {
		panic(ErrBadGamma.Error())
	}
	return func(c *config) { c.params.Gamma = gamma }
}

// WithAlpha sets the learning rate. Panics if alpha ∉ (0, 1].
func WithAlpha(alpha float64) Option {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		panic(ErrBadAlpha.Error())
	}
	return func(c *config) { c.params.Alpha = alpha }
}

// WithIterations sets the update budget. Zero is legal and leaves the table
// untouched. Panics if n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic(ErrBadIterations.Error())
	}
	return func(c *config) { c.params.Iterations = n }
}

// WithSeed seeds the exploration source. seed == 0 selects DefaultSeed.
// Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(c *config) { c.params.Seed = seed }
}

// WithRand supplies the exploration source directly. The trainer consumes it
// from a single goroutine; do not share r with concurrent code.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithParams replaces all numeric parameters. Values are validated by Train,
// not here, so decoded settings surface errors instead of panics.
func WithParams(p Params) Option {
	return func(c *config) { c.params = p }
}

// WithLogger routes training progress to l. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// gatherOptions resolves defaults, applies opts in order and materialises the
// random source.
func gatherOptions(opts ...Option) config {
	c := config{
		params: DefaultParams(),
		logger: NewNullLogger(),
	}
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.rng == nil {
		c.rng = NewRand(c.params.Seed)
	}

	return c
}

// NewNullLogger returns a logger that discards everything. It is the default
// sink of the trainer and handy in tests.
func NewNullLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
