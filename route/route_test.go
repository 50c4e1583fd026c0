// Package route_test contains unit tests for greedy route reconstruction:
// input validation, the trivial route, the termination guards and the
// reference warehouse scenarios.
package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qroute/graph"
	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/qlearn"
	"github.com/katalvlaran/qroute/route"
)

// qcell is one hand-written value table entry.
type qcell struct {
	from, to graph.Location
	v        float64
}

// cell is shorthand for a qcell literal.
func cell(from, to graph.Location, v float64) qcell {
	return qcell{from: from, to: to, v: v}
}

// handTable builds a warehouse value table with the given cells set and
// every other entry zero.
func handTable(t *testing.T, cells ...qcell) *qlearn.ValueTable {
	t.Helper()
	m, err := graph.Warehouse()
	require.NoError(t, err)

	q, err := matrix.NewSquare(m.N())
	require.NoError(t, err)
	for _, c := range cells {
		i, err := m.Encode(c.from)
		require.NoError(t, err)
		j, err := m.Encode(c.to)
		require.NoError(t, err)
		require.NoError(t, q.Set(i, j, c.v))
	}

	vt, err := qlearn.FromMatrix(m, q)
	require.NoError(t, err)

	return vt
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestRoute_NilTable(t *testing.T) {
	_, err := route.Route(nil, "A", "B")
	require.ErrorIs(t, err, route.ErrNilTable)
}

func TestRoute_UnknownLocations(t *testing.T) {
	vt := handTable(t)

	_, err := route.Route(vt, "Z", "A")
	require.ErrorIs(t, err, graph.ErrUnknownLocation)

	_, err = route.Route(vt, "A", "Z")
	require.ErrorIs(t, err, graph.ErrUnknownLocation)
}

func TestWithMaxSteps_Panics(t *testing.T) {
	require.Panics(t, func() { route.WithMaxSteps(0) })
	require.Panics(t, func() { route.WithMaxSteps(-2) })
}

// ------------------------------------------------------------------------
// 2. Trivial and boundary routes
// ------------------------------------------------------------------------

func TestRoute_StartEqualsGoal(t *testing.T) {
	zero := handTable(t)
	m := zero.Model()
	trained, err := qlearn.Train(m, qlearn.WithSeed(1))
	require.NoError(t, err)

	for _, vt := range []*qlearn.ValueTable{zero, trained} {
		for _, loc := range m.Locations() {
			path, err := route.Route(vt, loc, loc)
			require.NoError(t, err)
			require.Equal(t, []graph.Location{loc}, path)
		}
	}
}

func TestRoute_ZeroTableFollowsFirstIndex(t *testing.T) {
	m, err := graph.Warehouse()
	require.NoError(t, err)
	vt, err := qlearn.Train(m, qlearn.WithIterations(0))
	require.NoError(t, err)

	// Every all-zero row points at state 0 (A), legal or not.
	path, err := route.Route(vt, "K", "A")
	require.NoError(t, err)
	require.Equal(t, []graph.Location{"K", "A"}, path)

	// Any other goal: K → A → A repeats A.
	_, err = route.Route(vt, "K", "G")
	require.ErrorIs(t, err, route.ErrNoRouteFound)
}

func TestRoute_ZeroTableLegalOnly(t *testing.T) {
	m, err := graph.Warehouse()
	require.NoError(t, err)
	vt, err := qlearn.Train(m, qlearn.WithIterations(0))
	require.NoError(t, err)

	// Legal argmax on zero rows takes the lowest-index neighbour each time.
	path, err := route.Route(vt, "K", "A", route.WithLegalOnly())
	require.NoError(t, err)
	require.Equal(t, []graph.Location{"K", "J", "F", "B", "A"}, path)
	require.True(t, m.LegalPath(path))
}

// ------------------------------------------------------------------------
// 3. Termination guards
// ------------------------------------------------------------------------

func TestRoute_CycleDetected(t *testing.T) {
	vt := handTable(t,
		cell("K", "L", 5),
		cell("L", "K", 5),
	)

	_, err := route.Route(vt, "K", "G")
	require.ErrorIs(t, err, route.ErrNoRouteFound)
	require.Contains(t, err.Error(), "K→L→K")
}

func TestRoute_SelfLoopOffGoalIsCycle(t *testing.T) {
	vt := handTable(t, cell("A", "A", 9))

	_, err := route.Route(vt, "A", "B")
	require.ErrorIs(t, err, route.ErrNoRouteFound)
}

func TestRoute_MaxSteps(t *testing.T) {
	vt := handTable(t,
		cell("K", "L", 3),
		cell("L", "H", 3),
		cell("H", "G", 3),
	)

	path, err := route.Route(vt, "K", "G")
	require.NoError(t, err)
	require.Equal(t, []graph.Location{"K", "L", "H", "G"}, path)

	path, err = route.Route(vt, "K", "G", route.WithMaxSteps(3))
	require.NoError(t, err)
	require.Len(t, path, 4)

	_, err = route.Route(vt, "K", "G", route.WithMaxSteps(2))
	require.ErrorIs(t, err, route.ErrNoRouteFound)
	require.Contains(t, err.Error(), "exceeded 2 steps")
}

func TestRoute_FirstMaximumTieBreak(t *testing.T) {
	// K has equal values towards J (9) and L (11): the lower index wins.
	vt := handTable(t,
		cell("K", "J", 4),
		cell("K", "L", 4),
	)

	path, err := route.Route(vt, "K", "J")
	require.NoError(t, err)
	require.Equal(t, []graph.Location{"K", "J"}, path)
}

// ------------------------------------------------------------------------
// 4. Reference scenarios
// ------------------------------------------------------------------------

func TestRoute_WarehouseReference(t *testing.T) {
	m, err := graph.Warehouse()
	require.NoError(t, err)

	vt, err := qlearn.Train(m,
		qlearn.WithGamma(0.75),
		qlearn.WithAlpha(0.9),
		qlearn.WithIterations(1000),
		qlearn.WithSeed(42),
	)
	require.NoError(t, err)

	path, err := route.Route(vt, "K", "G")
	require.NoError(t, err)
	require.Equal(t, graph.Location("K"), path[0])
	require.Equal(t, graph.Location("G"), path[len(path)-1])
	require.True(t, m.LegalPath(path), "path %v uses an illegal transition", path)
}

func TestRoute_WarehouseConverged(t *testing.T) {
	m, err := graph.Warehouse()
	require.NoError(t, err)

	vt, err := qlearn.Train(m, qlearn.WithIterations(5000), qlearn.WithSeed(42))
	require.NoError(t, err)

	path, err := route.Route(vt, "K", "G")
	require.NoError(t, err)
	require.Equal(t, []graph.Location{"K", "L", "H", "G"}, path)

	path, err = route.Route(vt, "E", "G")
	require.NoError(t, err)
	require.True(t, m.LegalPath(path))
	require.Equal(t, graph.Location("G"), path[len(path)-1])
}

func TestRoute_GoalEdgeBonus(t *testing.T) {
	// Aisles plus a one-way bonus edge F→G and a small reverse G→F.
	edges := graph.WarehouseEdges()
	edges = append(edges[:len(edges)-1],
		graph.Edge{From: "F", To: "G", Reward: 1000, Directed: true},
		graph.Edge{From: "G", To: "F", Reward: 1, Directed: true},
	)
	m, err := graph.New(graph.WarehouseSize, graph.WarehouseLocations(), edges)
	require.NoError(t, err)

	vt, err := qlearn.Train(m, qlearn.WithIterations(5000), qlearn.WithSeed(42))
	require.NoError(t, err)

	path, err := route.Route(vt, "K", "G")
	require.NoError(t, err)
	require.Equal(t, []graph.Location{"K", "J", "F", "G"}, path)
	require.True(t, m.LegalPath(path))
}
