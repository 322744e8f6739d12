package grid

import "fmt"

// Layout is the serializable part of a board: its size, endpoints and walls.
// Search metadata is never part of a layout.
type Layout struct {
	Size  int            `json:"size" bson:"size"`
	Start CellPosition   `json:"start" bson:"start"`
	End   CellPosition   `json:"end" bson:"end"`
	Walls []CellPosition `json:"walls" bson:"walls"`
}

// Layout captures the walls of the grid together with the given endpoints.
func (g *Grid) Layout(start, end CellPosition) Layout {
	return Layout{
		Size:  g.Size,
		Start: start,
		End:   end,
		Walls: g.Walls(),
	}
}

// FromLayout rebuilds a fresh grid from a layout.
func FromLayout(l Layout) (*Grid, error) {
	g, err := New(l.Size)
	if err != nil {
		return nil, err
	}

	for _, pos := range []CellPosition{l.Start, l.End} {
		if !g.InBound(pos) {
			return nil, fmt.Errorf("%w: endpoint (%d,%d)", ErrOutOfBounds, pos.X, pos.Y)
		}
	}

	for _, w := range l.Walls {
		if err := g.SetWall(w, true); err != nil {
			return nil, err
		}
	}
	return g, nil
}
