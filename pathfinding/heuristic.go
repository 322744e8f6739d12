package pathfinding

import "github.com/beka-birhanu/vinom-pathfinder/grid"

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from, to grid.CellPosition) int

// Manhattan is the 4-directional unit-cost distance |dx| + |dy|.
// It never overestimates and is consistent, so A* paths are optimal.
func Manhattan(from, to grid.CellPosition) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
