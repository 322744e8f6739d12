package pathfinding

import (
	"cmp"
	"slices"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// aStar expands the open cell with the lowest F = G + H. The open set is kept
// in array order and stably sorted by F before each expansion, so among equal
// F costs the cell already ahead in the set goes first. A relaxed cell keeps
// its place in the array.
type aStar struct {
	grid      *grid.Grid
	end       grid.CellPosition
	heuristic Heuristic

	open    []*grid.Cell
	members map[grid.CellPosition]bool
}

func newAStar(g *grid.Grid, start, end grid.CellPosition, h Heuristic) *aStar {
	a := &aStar{
		grid:      g,
		end:       end,
		heuristic: h,
		members:   make(map[grid.CellPosition]bool),
	}

	startCell := g.At(start)
	startCell.G = 0
	startCell.F = h(start, end)
	startCell.Scored = true
	a.insert(startCell)
	return a
}

func (a *aStar) insert(c *grid.Cell) {
	a.open = append(a.open, c)
	a.members[c.Position()] = true
}

// next removes the front of the stably sorted open set.
func (a *aStar) next() *grid.Cell {
	slices.SortStableFunc(a.open, func(x, y *grid.Cell) int {
		return cmp.Compare(x.F, y.F)
	})
	current := a.open[0]
	a.open[0] = nil
	a.open = a.open[1:]
	delete(a.members, current.Position())
	return current
}

// expand implements expander.
func (a *aStar) expand() (grid.CellPosition, bool) {
	if len(a.open) == 0 {
		return grid.CellPosition{}, false
	}

	current := a.next()
	pos := current.Position()
	current.Visited = true
	if pos == a.end {
		return pos, true
	}

	for _, neighbor := range a.grid.Neighbors(pos) {
		if neighbor.Wall || neighbor.Visited {
			continue
		}

		tentativeG := current.G + 1
		if neighbor.Scored && tentativeG >= neighbor.G {
			continue
		}

		parent := pos
		neighbor.G = tentativeG
		neighbor.F = tentativeG + a.heuristic(neighbor.Position(), a.end)
		neighbor.Scored = true
		neighbor.Parent = &parent

		if !a.members[neighbor.Position()] {
			a.insert(neighbor)
		}
	}
	return pos, true
}
