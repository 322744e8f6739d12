package grid

import "strings"

// Role is the visual role of a cell, in paint priority order.
type Role int

const (
	RoleEmpty Role = iota
	RoleVisited
	RolePath
	RoleWall
	RoleEnd
	RoleStart
)

var roleGlyphs = map[Role]byte{
	RoleEmpty:   ' ',
	RoleVisited: '.',
	RolePath:    '*',
	RoleWall:    '#',
	RoleEnd:     'E',
	RoleStart:   'S',
}

// String returns the lowercase name of the role.
func (r Role) String() string {
	switch r {
	case RoleVisited:
		return "visited"
	case RolePath:
		return "path"
	case RoleWall:
		return "wall"
	case RoleEnd:
		return "end"
	case RoleStart:
		return "start"
	default:
		return "empty"
	}
}

// RoleOf classifies the cell at pos for painting. Start and end win over
// everything, then walls, path cells and visited cells.
func (g *Grid) RoleOf(pos, start, end CellPosition) Role {
	cell := g.At(pos)
	switch {
	case cell == nil:
		return RoleEmpty
	case pos == start:
		return RoleStart
	case pos == end:
		return RoleEnd
	case cell.Wall:
		return RoleWall
	case cell.IsPath:
		return RolePath
	case cell.Visited:
		return RoleVisited
	default:
		return RoleEmpty
	}
}

// Render provides a textual representation of the grid with start and end marked.
func (g *Grid) Render(start, end CellPosition) string {
	var b strings.Builder

	border := "+" + strings.Repeat("-", g.Size) + "+\n"
	b.WriteString(border)
	for x := 0; x < g.Size; x++ {
		b.WriteByte('|')
		for y := 0; y < g.Size; y++ {
			b.WriteByte(roleGlyphs[g.RoleOf(CellPosition{X: x, Y: y}, start, end)])
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	return b.String()
}
