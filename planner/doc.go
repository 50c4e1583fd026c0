// Package planner routes between arbitrary locations of a graph by learning
// one value table per goal.
//
// The reference warehouse marks its goal with a reward on the G→G self-loop.
// The planner applies the same marking to any goal X: it copies the base
// model, writes the goal reward on X→X, trains a fresh table and walks the
// greedy route.
//
// Tables are trained once per goal and cached, so repeated queries towards the
// same goal cost one route walk. PlanVia chains two plans through an
// intermediate location.
//
// Determinism:
//
//   - The seed of goal X is qlearn.DeriveSeed(base seed, state index of X),
//     independent of query order. Equal seeds give equal routes.
//
// Thread safety:
//
//   - A Planner is safe for concurrent use. Queries for different goals train
//     in parallel; queries for the same goal wait for its single training run.
//
// Options:
//
//	– WithGoalReward:   bonus written on the goal's self-loop (default 1000).
//	– WithParams:       training parameters (default qlearn.DefaultParams()).
//	– WithSeed:         base seed; each goal trains on a stream derived from it.
//	– WithLogger:       logrus.FieldLogger for planning and training progress.
//	– WithRouteOptions: options forwarded to route.Route.
//
// Errors (sentinel):
//
//	– ErrNilModel       if the base model is nil.
//	– ErrBadGoalReward  if the goal reward is not finite and positive (panics in WithGoalReward).
package planner
