/*
Package grid provides the square obstacle grid that pathfinding runs over.

A Grid owns an N×N matrix of Cell values. Each cell carries its coordinates, a wall flag
editable between runs, and the transient metadata a search writes (visited, parent, path
flag and A* costs).

The package also offers neighbour resolution in a fixed order, random wall generation with
an injected random source, a serializable Layout and an ASCII renderer.
*/
package grid

import (
	"errors"
	"fmt"
)

const (
	minGridDimension = 1
	maxGridDimension = 200
)

var (
	// Directions lists neighbour offsets in resolution order: up, down, left, right.
	// The order decides traversal tie-breaks and must not change.
	Directions = []Direction{
		{Name: "Up", DX: -1, DY: 0},
		{Name: "Down", DX: 1, DY: 0},
		{Name: "Left", DX: 0, DY: -1},
		{Name: "Right", DX: 0, DY: 1},
	}

	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrOutOfBounds      = errors.New("position is out of the grid")
)

// Grid is a square matrix of cells indexed by Cells[x][y].
type Grid struct {
	Size  int       // Size is the number of rows and columns.
	Cells [][]*Cell // Cells holds every cell of the grid.
}

// New creates an all-clear grid of the given square dimension.
func New(size int) (*Grid, error) {
	if size < minGridDimension || size > maxGridDimension {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, size)
	}

	cells := make([][]*Cell, size)
	for x := range cells {
		cells[x] = make([]*Cell, size)
		for y := range cells[x] {
			cells[x][y] = &Cell{X: x, Y: y}
		}
	}

	return &Grid{
		Size:  size,
		Cells: cells,
	}, nil
}

// InBound reports whether the position lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.X >= 0 && pos.X < g.Size && pos.Y >= 0 && pos.Y < g.Size
}

// At returns the cell at the given position, or nil when it is out of bounds.
func (g *Grid) At(pos CellPosition) *Cell {
	if !g.InBound(pos) {
		return nil
	}
	return g.Cells[pos.X][pos.Y]
}

// Neighbors returns the in-bounds cells adjacent to pos, ordered up, down, left, right.
// Walls are included; callers decide whether to skip them.
func (g *Grid) Neighbors(pos CellPosition) []*Cell {
	result := make([]*Cell, 0, len(Directions))
	for _, d := range Directions {
		next := CellPosition{X: pos.X + d.DX, Y: pos.Y + d.DY}
		if g.InBound(next) {
			result = append(result, g.Cells[next.X][next.Y])
		}
	}
	return result
}

// SetWall places or removes a wall at pos.
func (g *Grid) SetWall(pos CellPosition, wall bool) error {
	cell := g.At(pos)
	if cell == nil {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pos.X, pos.Y)
	}
	cell.Wall = wall
	return nil
}

// ToggleWall flips the wall flag at pos and returns the new value.
func (g *Grid) ToggleWall(pos CellPosition) (bool, error) {
	cell := g.At(pos)
	if cell == nil {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pos.X, pos.Y)
	}
	cell.Wall = !cell.Wall
	return cell.Wall, nil
}

// ClearWalls removes every wall of the grid.
func (g *Grid) ClearWalls() {
	for _, row := range g.Cells {
		for _, cell := range row {
			cell.Wall = false
		}
	}
}

// Reset clears the search metadata of every cell, keeping walls.
func (g *Grid) Reset() {
	for _, row := range g.Cells {
		for _, cell := range row {
			cell.clearSearch()
		}
	}
}

// IsFresh reports whether no cell carries metadata from a previous run.
func (g *Grid) IsFresh() bool {
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Visited || cell.IsPath || cell.Parent != nil || cell.Scored {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the grid. Cells are never shared between grids.
func (g *Grid) Clone() *Grid {
	cells := make([][]*Cell, g.Size)
	for x := range cells {
		cells[x] = make([]*Cell, g.Size)
		for y := range cells[x] {
			c := *g.Cells[x][y]
			if c.Parent != nil {
				parent := *c.Parent
				c.Parent = &parent
			}
			cells[x][y] = &c
		}
	}
	return &Grid{Size: g.Size, Cells: cells}
}

// Walls returns the positions of every wall in row-major order.
func (g *Grid) Walls() []CellPosition {
	var walls []CellPosition
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Wall {
				walls = append(walls, cell.Position())
			}
		}
	}
	return walls
}

// Visited returns the positions of every visited cell in row-major order.
func (g *Grid) Visited() []CellPosition {
	var visited []CellPosition
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell.Visited {
				visited = append(visited, cell.Position())
			}
		}
	}
	return visited
}
