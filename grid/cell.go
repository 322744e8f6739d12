package grid

// CellPosition represents the position of a cell in the grid.
// X indexes the outer slice of the grid (rows), Y the inner one (columns).
type CellPosition struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Direction is an axis-aligned offset between two adjacent cells.
type Direction struct {
	Name string
	DX   int
	DY   int
}

// Cell represents a single cell in the grid.
// Wall is the only field owned by the caller; the rest is search metadata
// written by a pathfinding run and cleared by Reset.
type Cell struct {
	X    int  // X is the row index of the cell.
	Y    int  // Y is the column index of the cell.
	Wall bool // Wall marks the cell as an obstacle.

	Visited bool          // Visited is set once per run when the cell is discovered or expanded.
	Parent  *CellPosition // Parent points at the cell this one was reached from.
	IsPath  bool          // IsPath is set by path reconstruction.

	G      int  // G is the best known cost from the start (A* only).
	F      int  // F is G plus the heuristic estimate (A* only).
	Scored bool // Scored reports whether G and F hold a value.
}

// Position returns the coordinates of the cell.
func (c *Cell) Position() CellPosition {
	return CellPosition{X: c.X, Y: c.Y}
}

// clearSearch drops every transient field written by a search run.
func (c *Cell) clearSearch() {
	c.Visited = false
	c.Parent = nil
	c.IsPath = false
	c.G = 0
	c.F = 0
	c.Scored = false
}
