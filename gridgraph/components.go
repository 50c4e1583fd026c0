package gridgraph

// ConnectedComponents finds all contiguous walkable areas according to
// gg.Conn. Each component is a slice of row-major cell indices in BFS order;
// components are ordered by their first cell.
//
// Time:   O(W·H·d), d = 4 or 8.
// Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var (
		comps [][]int
		x, y  int
	)
	for y = 0; y < gg.Height; y++ {
		for x = 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.Walkable(x, y) || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Walkable(vx, vy) {
						continue
					}
					if vi := gg.index(vx, vy); !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
