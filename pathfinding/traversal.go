package pathfinding

import (
	"container/list"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// frontier holds discovered but not yet expanded cells.
type frontier interface {
	push(*grid.Cell)
	pop() *grid.Cell
	len() int
}

// queue is the FIFO frontier of breadth-first search.
type queue struct {
	cells *list.List
}

func newQueue() *queue { return &queue{cells: list.New()} }

func (q *queue) push(c *grid.Cell) { q.cells.PushBack(c) }
func (q *queue) len() int          { return q.cells.Len() }
func (q *queue) pop() *grid.Cell {
	return q.cells.Remove(q.cells.Front()).(*grid.Cell)
}

// stack is the LIFO frontier of depth-first search.
type stack []*grid.Cell

func (s *stack) push(c *grid.Cell) { *s = append(*s, c) }
func (s *stack) len() int          { return len(*s) }
func (s *stack) pop() *grid.Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	(*s)[lastIndex] = nil
	*s = (*s)[:lastIndex]
	return popped
}

// traversal expands cells for BFS and DFS. The two differ only in their frontier.
// A cell is marked visited and parented when it is discovered, so it enters the
// frontier at most once.
type traversal struct {
	grid     *grid.Grid
	end      grid.CellPosition
	frontier frontier
}

func newTraversal(g *grid.Grid, start, end grid.CellPosition, f frontier) *traversal {
	startCell := g.At(start)
	startCell.Visited = true
	f.push(startCell)
	return &traversal{grid: g, end: end, frontier: f}
}

// expand implements expander.
func (t *traversal) expand() (grid.CellPosition, bool) {
	if t.frontier.len() == 0 {
		return grid.CellPosition{}, false
	}

	current := t.frontier.pop()
	pos := current.Position()
	if pos == t.end {
		return pos, true
	}

	for _, neighbor := range t.grid.Neighbors(pos) {
		if neighbor.Visited || neighbor.Wall {
			continue
		}
		parent := pos
		neighbor.Visited = true
		neighbor.Parent = &parent
		t.frontier.push(neighbor)
	}
	return pos, true
}
