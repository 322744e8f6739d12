package grid

import (
	"fmt"
	"math/rand"
)

// WallModel configures clustered wall generation.
// Clusters random walks of Steps moves each are performed; every visited
// cell becomes a wall with probability Density.
type WallModel struct {
	Clusters int     // Number of random walks.
	Steps    int     // Moves per random walk.
	Density  float64 // Probability of walling a visited cell (0.0 to 1.0).
}

// DefaultWallCount is the number of random placements used for a grid of the
// given size: a third of its cells.
func DefaultWallCount(size int) int {
	return size * size / 3
}

// ScatterWalls clears the grid's walls and places count walls at random
// positions drawn from r. Placements may repeat, and positions in keep are
// never walled.
func ScatterWalls(g *Grid, r *rand.Rand, count int, keep ...CellPosition) {
	g.ClearWalls()
	for range count {
		pos := randomCellPosition(g, r)
		if contains(keep, pos) {
			continue
		}
		g.Cells[pos.X][pos.Y].Wall = true
	}
}

// ClusterWalls clears the grid's walls and grows clustered walls by random
// walks described by m. Positions in keep are never walled.
func ClusterWalls(g *Grid, r *rand.Rand, m WallModel, keep ...CellPosition) error {
	if m.Density < 0 || m.Density > 1 || m.Clusters < 0 || m.Steps < 0 {
		return fmt.Errorf("invalid WallModel")
	}

	g.ClearWalls()
	for range m.Clusters {
		pos := randomCellPosition(g, r)
		for range m.Steps {
			if r.Float64() < m.Density && !contains(keep, pos) {
				g.Cells[pos.X][pos.Y].Wall = true
			}
			d := Directions[r.Intn(len(Directions))]
			next := CellPosition{X: pos.X + d.DX, Y: pos.Y + d.DY}
			if g.InBound(next) {
				pos = next
			}
		}
	}
	return nil
}

// randomCellPosition generates a random position within the grid.
func randomCellPosition(g *Grid, r *rand.Rand) CellPosition {
	return CellPosition{X: r.Intn(g.Size), Y: r.Intn(g.Size)}
}

func contains(positions []CellPosition, pos CellPosition) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}
