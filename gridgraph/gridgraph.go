package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qroute/graph"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular plan.
// It deep-copies the input.
// Returns ErrEmptyGrid or ErrNonRectangular.
// Complexity: O(W×H).
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	var y int
	for y = 0; y < h; y++ {
		if len(values[y]) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(values[y]), w)
		}
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		Conn:          opts.Conn,
		WalkThreshold: opts.WalkThreshold,
		cells:         cells,
		offsets:       offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the plan.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is inside the plan and walkable.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.cells[y][x] >= gg.WalkThreshold
}

// Value returns the original plan value at (x,y); false if out of bounds.
func (gg *GridGraph) Value(x, y int) (int, bool) {
	if !gg.InBounds(x, y) {
		return 0, false
	}
	return gg.cells[y][x], true
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// LocationOf names cell (x,y) as "x,y".
func LocationOf(x, y int) graph.Location {
	return graph.Location(strconv.Itoa(x) + "," + strconv.Itoa(y))
}

// Cell parses a location produced by LocationOf.
func Cell(loc graph.Location) (x, y int, ok bool) {
	xs, ys, found := strings.Cut(string(loc), ",")
	if !found {
		return 0, 0, false
	}
	var err error
	if x, err = strconv.Atoi(xs); err != nil {
		return 0, 0, false
	}
	if y, err = strconv.Atoi(ys); err != nil {
		return 0, 0, false
	}
	return x, y, true
}

// ToModel converts the walkable cells into a reward model. Locations follow
// row-major order; every pair of walkable neighbours is joined in both
// directions with the graph's default reward, whatever graph.WithDirected
// says. Other opts (e.g. graph.WithDefaultReward) apply as usual.
//
// Errors: ErrNoFloor, graph.ErrConfiguration (e.g. wrapping graph.ErrDeadEnd
// for a walkable cell with no walkable neighbour).
func (gg *GridGraph) ToModel(opts ...graph.Option) (*graph.Model, error) {
	var (
		locations []graph.Location
		edges     []graph.Edge
		x, y      int
		d         [2]int
	)
	for y = 0; y < gg.Height; y++ {
		for x = 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			locations = append(locations, LocationOf(x, y))
			for _, d = range gg.offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Walkable(nx, ny) {
					continue
				}
				// Both directions come from their own source cell, so a
				// graph.WithDirected option cannot make floor one-way.
				edges = append(edges, graph.Edge{From: LocationOf(x, y), To: LocationOf(nx, ny), Directed: true})
			}
		}
	}
	if len(locations) == 0 {
		return nil, ErrNoFloor
	}

	return graph.New(len(locations), locations, edges, opts...)
}
