// Package gridgraph defines types, options, and sentinel errors
// for floor-plan grids.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoFloor indicates a plan without any walkable cell.
	ErrNoFloor = errors.New("gridgraph: plan has no walkable cell")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for plan conversion.
type GridOptions struct {
	// WalkThreshold specifies the minimum cell value considered walkable.
	WalkThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns WalkThreshold=1 (values ≥1 are floor), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WalkThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D floor plan as a graph. It is immutable once built.
// cells[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity
	WalkThreshold int

	cells   [][]int
	offsets [][2]int
}
