package qlearn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qroute/graph"
	"github.com/katalvlaran/qroute/matrix"
)

// Train learns the action-value table of m by one-step Q-learning under a
// fixed uniform-random exploration policy.
//
// Each of the Iterations steps:
//  1. samples current uniformly from all N states;
//  2. samples next uniformly from the legal transitions of current;
//  3. computes TD = R[current][next] + gamma*max_a Q[next][a] - Q[current][next];
//  4. applies Q[current][next] += alpha*TD.
//
// Training always runs the full budget; there is no convergence check.
// Transitions with zero reward are never sampled, so their Q entries stay 0.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilModel).
//  2. Params must validate (ErrBadGamma, ErrBadAlpha, ErrBadIterations).
//
// Complexity:
//
//   - Time:  O(N² + Iterations·N)  (row max per step)
//   - Space: O(N²)
func Train(m *graph.Model, opts ...Option) (*ValueTable, error) {
	// 1) Build options.
	cfg := gatherOptions(opts...)

	// 2) Validate inputs.
	if m == nil {
		return nil, ErrNilModel
	}
	if err := cfg.params.Validate(); err != nil {
		return nil, err
	}

	// 3) Allocate the zero table and the run state.
	vt, err := NewValueTable(m)
	if err != nil {
		return nil, err
	}
	t, err := newTrainer(m, vt.q, cfg)
	if err != nil {
		return nil, err
	}

	log := cfg.logger.WithFields(logrus.Fields{
		"run":        vt.runID.String(),
		"states":     m.N(),
		"iterations": cfg.params.Iterations,
	})
	log.WithFields(logrus.Fields{
		"gamma": cfg.params.Gamma,
		"alpha": cfg.params.Alpha,
	}).Debug("qlearn: training started")

	// 4) Run the update loop.
	if err = t.run(); err != nil {
		log.WithError(err).Error("qlearn: training aborted")
		return nil, err
	}
	vt.stats = t.stats

	log.WithFields(logrus.Fields{
		"mean_abs_td": t.stats.MeanAbsTD,
		"max_abs_td":  t.stats.MaxAbsTD,
		"last_td":     t.stats.LastTD,
	}).Info("qlearn: training finished")

	return vt, nil
}

// trainer holds the mutable state for a single Train execution.
type trainer struct {
	n        int           // number of states
	reward   *matrix.Dense // private copy of the reward matrix
	playable [][]int       // legal next states per state
	q        *matrix.Dense // table being learned; owned by this run
	params   Params
	rng      *rand.Rand
	stats    Stats
}

// newTrainer snapshots the model so the hot loop only touches local data.
func newTrainer(m *graph.Model, q *matrix.Dense, cfg config) (*trainer, error) {
	n := m.N()
	playable := make([][]int, n)
	var (
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		if playable[i], err = m.Playable(i); err != nil {
			return nil, err
		}
	}

	return &trainer{
		n:        n,
		reward:   m.RewardMatrix(),
		playable: playable,
		q:        q,
		params:   cfg.params,
		rng:      cfg.rng,
		stats:    Stats{Visits: make([]int, n)},
	}, nil
}

// run performs exactly params.Iterations updates.
func (t *trainer) run() error {
	var (
		it                  int
		current, next       int
		moves               []int
		r, nextMax, old, td float64
		sumAbs, abs         float64
		err                 error
	)
	for it = 0; it < t.params.Iterations; it++ {
		// 1) Random current state.
		current = t.rng.Intn(t.n)
		t.stats.Visits[current]++

		// 2-3) Random legal next state. Non-empty by graph validation.
		moves = t.playable[current]
		next = moves[t.rng.Intn(len(moves))]

		// 4) Temporal difference.
		if r, err = t.reward.At(current, next); err != nil {
			return fmt.Errorf("qlearn: iteration %d: %w", it, err)
		}
		if nextMax, err = t.q.RowMax(next); err != nil {
			return fmt.Errorf("qlearn: iteration %d: %w", it, err)
		}
		if old, err = t.q.At(current, next); err != nil {
			return fmt.Errorf("qlearn: iteration %d: %w", it, err)
		}
		td = TDError(r, t.params.Gamma, nextMax, old)

		// 5) In-place update.
		if err = t.q.Add(current, next, t.params.Alpha*td); err != nil {
			return fmt.Errorf("qlearn: iteration %d: %w", it, err)
		}

		abs = math.Abs(td)
		sumAbs += abs
		if abs > t.stats.MaxAbsTD {
			t.stats.MaxAbsTD = abs
		}
		t.stats.LastTD = td
	}

	t.stats.Iterations = t.params.Iterations
	if t.params.Iterations > 0 {
		t.stats.MeanAbsTD = sumAbs / float64(t.params.Iterations)
	}

	return nil
}
