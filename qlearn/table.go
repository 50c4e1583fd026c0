package qlearn

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/qroute/graph"
	"github.com/katalvlaran/qroute/matrix"
)

// Stats summarises one training run.
type Stats struct {
	// Iterations is the number of updates performed.
	Iterations int

	// LastTD is the TD error of the final update (0 when Iterations == 0).
	LastTD float64

	// MeanAbsTD is the mean |TD| over all updates.
	MeanAbsTD float64

	// MaxAbsTD is the largest |TD| observed.
	MaxAbsTD float64

	// Visits[i] counts how often state i was sampled as "current".
	Visits []int
}

// ValueTable is the learned N×N action-value table Q of a model.
//
// Train is its only writer; once returned, a ValueTable is read-only and
// every accessor hands out copies, so it may be shared by concurrent route
// queries.
type ValueTable struct {
	model *graph.Model
	q     *matrix.Dense
	stats Stats
	runID uuid.UUID
}

// NewValueTable returns the all-zero table of m.
// Errors: ErrNilModel.
func NewValueTable(m *graph.Model) (*ValueTable, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	q, err := matrix.NewSquare(m.N())
	if err != nil {
		return nil, err
	}

	return &ValueTable{model: m, q: q, runID: uuid.New()}, nil
}

// FromMatrix wraps a copy of an externally computed value matrix.
// Errors: ErrNilModel, ErrShapeMismatch.
func FromMatrix(m *graph.Model, q *matrix.Dense) (*ValueTable, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if q == nil {
		return nil, fmt.Errorf("%w: %w", ErrShapeMismatch, matrix.ErrNilMatrix)
	}
	r, c := q.Shape()
	if r != m.N() || c != m.N() {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShapeMismatch, r, c, m.N(), m.N())
	}

	return &ValueTable{model: m, q: q.Clone(), runID: uuid.New()}, nil
}

// Model returns the graph model the table was learned on.
func (vt *ValueTable) Model() *graph.Model { return vt.model }

// N returns the number of states.
func (vt *ValueTable) N() int { return vt.model.N() }

// At returns Q[i][j].
func (vt *ValueTable) At(i, j int) (float64, error) { return vt.q.At(i, j) }

// Value returns Q[from][to] addressed by location.
func (vt *ValueTable) Value(from, to graph.Location) (float64, error) {
	i, err := vt.model.Encode(from)
	if err != nil {
		return 0, err
	}
	j, err := vt.model.Encode(to)
	if err != nil {
		return 0, err
	}

	return vt.q.At(i, j)
}

// Row returns a copy of Q[i].
func (vt *ValueTable) Row(i int) ([]float64, error) { return vt.q.Row(i) }

// Max returns max_a Q[i][a].
func (vt *ValueTable) Max(i int) (float64, error) { return vt.q.RowMax(i) }

// ArgMax returns the greedy action of state i: the first column holding the
// row maximum. It may name an illegal transition when the row is all zero.
func (vt *ValueTable) ArgMax(i int) (int, error) { return vt.q.RowArgMax(i) }

// ArgMaxLegal returns the greedy action of state i among legal transitions
// only (first maximum in ascending column order).
func (vt *ValueTable) ArgMaxLegal(i int) (int, error) {
	moves, err := vt.model.Playable(i)
	if err != nil {
		return 0, err
	}

	return vt.q.RowArgMaxAmong(i, moves)
}

// Matrix returns a copy of the underlying N×N matrix.
func (vt *ValueTable) Matrix() *matrix.Dense { return vt.q.Clone() }

// Equal reports whether both tables hold bit-identical values.
func (vt *ValueTable) Equal(o *ValueTable) bool {
	if vt == nil || o == nil {
		return false
	}
	return vt.q.Equal(o.q)
}

// Stats returns the training summary (zero value for tables not built by Train).
func (vt *ValueTable) Stats() Stats {
	s := vt.stats
	s.Visits = append([]int(nil), vt.stats.Visits...)

	return s
}

// RunID identifies the run that produced the table; it is also attached to
// every log entry of that run.
func (vt *ValueTable) RunID() uuid.UUID { return vt.runID }
