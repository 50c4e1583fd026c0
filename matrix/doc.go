// Package matrix offers the dense square tables used by qroute.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 table with safe At/Set accessors that return
//     sentinel errors instead of panicking.
//   - Row scans used by learning and routing: RowMax, RowArgMax (first maximum
//     wins, lowest column index on ties) and RowPositive (legal transitions).
//   - Clone and Equal for snapshotting and comparing tables.
//
// Both the reward matrix of a graph model and the learned value table are
// Dense. Matrices are best for small state spaces where O(N²) memory is
// acceptable; qroute targets graphs of a few dozen locations at most.
//
// See the examples in this package and graph for usage patterns.
package matrix
