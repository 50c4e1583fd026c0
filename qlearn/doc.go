// Package qlearn learns action values over a graph.Model with one-step
// tabular Q-learning.
//
// Overview:
//
//   - Train allocates an all-zero N×N ValueTable and performs a fixed number
//     of updates. Each update samples a state uniformly, samples one of its
//     legal transitions uniformly, and moves Q[state][next] towards
//     reward + gamma·max Q[next] by a fraction alpha.
//   - Exploration never depends on the current estimates (off-policy, no
//     epsilon decay) and no convergence check is made: the budget is the
//     only stopping rule. 1000 iterations are plenty for the 12-bay
//     reference warehouse.
//   - Illegal transitions are never sampled, so their Q entries stay 0.
//
// Determinism:
//
//   - All randomness comes from one explicit *rand.Rand, either built from
//     WithSeed (seed 0 ⇒ DefaultSeed) or passed via WithRand. Equal seeds give
//     bit-identical tables.
//
// Configuration:
//
//   - Functional options (WithGamma, WithAlpha, WithIterations, WithSeed,
//     WithRand, WithParams, WithLogger) with documented defaults.
//   - DecodeParams turns a caller-owned settings map into Params.
//
// Logging:
//
//   - Train reports start (debug) and a summary with TD statistics (info) to
//     a logrus.FieldLogger tagged with the run id. The default logger
//     discards everything.
//
// Thread safety:
//
//   - A Train call is single-threaded and owns its table until it returns.
//     The returned ValueTable is read-only and safe for concurrent readers.
//     Never share one *rand.Rand between concurrent Train calls; derive
//     per-run seeds with DeriveSeed instead.
//
// Example:
//
//	m, _ := graph.Warehouse()
//	vt, err := qlearn.Train(m, qlearn.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	best, _ := vt.ArgMax(10) // greedy move from K
package qlearn
