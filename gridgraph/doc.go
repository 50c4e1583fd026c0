// Package gridgraph turns a rectangular floor plan into a graph.Model.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int plan. Cells with value ≥
//     WalkThreshold are walkable floor; everything else is racking or wall.
//   - ConnectedComponents groups walkable cells into mutually reachable areas.
//   - ToModel emits one location per walkable cell, named "x,y", and an
//     undirected unit-reward transition between every pair of walkable
//     neighbours.
//
// Options:
//
//   - GridOptions.WalkThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrEmptyGrid: plan has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoFloor: plan has no walkable cell.
//   - graph.ErrDeadEnd (via graph.ErrConfiguration) from ToModel when a
//     walkable cell has no walkable neighbour.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), d = 4 or 8.
//   - ToModel:             O((W×H)² ) dominated by the dense reward matrix.
package gridgraph
