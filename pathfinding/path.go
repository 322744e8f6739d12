package pathfinding

import "github.com/beka-birhanu/vinom-pathfinder/grid"

// Reconstruct walks parent links back from end, marking every cell of the
// chain as part of the path, start included. It returns the number of cells
// marked. The walk stops after Size*Size cells so a corrupted grid cannot loop.
func Reconstruct(g *grid.Grid, end grid.CellPosition) int {
	marked := 0
	current := g.At(end)
	for current != nil && marked < g.Size*g.Size {
		current.IsPath = true
		marked++
		if current.Parent == nil {
			break
		}
		current = g.At(*current.Parent)
	}
	return marked
}

// Path returns the reconstructed path from start to end, or nil when end is
// not marked as a path cell.
func Path(g *grid.Grid, end grid.CellPosition) []grid.CellPosition {
	current := g.At(end)
	if current == nil || !current.IsPath {
		return nil
	}

	var path []grid.CellPosition
	for current != nil && current.IsPath && len(path) < g.Size*g.Size {
		path = append(path, current.Position())
		if current.Parent == nil {
			break
		}
		current = g.At(*current.Parent)
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
