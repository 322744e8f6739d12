package grid

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(cells []*Cell) []CellPosition {
	out := make([]CellPosition, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.Position())
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("creates a clear square grid", func(t *testing.T) {
		g, err := New(4)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Size)
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				c := g.Cells[x][y]
				assert.Equal(t, CellPosition{X: x, Y: y}, c.Position())
				assert.False(t, c.Wall)
			}
		}
		assert.True(t, g.IsFresh())
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		for _, size := range []int{0, -3, maxGridDimension + 1} {
			_, err := New(size)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		}
	})
}

func TestNeighbors(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	t.Run("center has four neighbours in fixed order", func(t *testing.T) {
		got := positions(g.Neighbors(CellPosition{X: 1, Y: 1}))
		assert.Equal(t, []CellPosition{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, got)
	})

	t.Run("corner omits out of bounds directions", func(t *testing.T) {
		assert.Equal(t, []CellPosition{{1, 0}, {0, 1}}, positions(g.Neighbors(CellPosition{X: 0, Y: 0})))
		assert.Equal(t, []CellPosition{{1, 2}, {2, 1}}, positions(g.Neighbors(CellPosition{X: 2, Y: 2})))
	})

	t.Run("walls are not filtered", func(t *testing.T) {
		require.NoError(t, g.SetWall(CellPosition{X: 0, Y: 1}, true))
		defer func() { _ = g.SetWall(CellPosition{X: 0, Y: 1}, false) }()
		assert.Contains(t, positions(g.Neighbors(CellPosition{X: 0, Y: 0})), CellPosition{X: 0, Y: 1})
	})

	t.Run("is idempotent", func(t *testing.T) {
		pos := CellPosition{X: 2, Y: 1}
		assert.Equal(t, g.Neighbors(pos), g.Neighbors(pos))
	})

	t.Run("single cell grid has no neighbours", func(t *testing.T) {
		one, err := New(1)
		require.NoError(t, err)
		assert.Empty(t, one.Neighbors(CellPosition{}))
	})
}

func TestWallEditing(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	wall, err := g.ToggleWall(CellPosition{X: 1, Y: 2})
	require.NoError(t, err)
	assert.True(t, wall)
	assert.Equal(t, []CellPosition{{1, 2}}, g.Walls())

	wall, err = g.ToggleWall(CellPosition{X: 1, Y: 2})
	require.NoError(t, err)
	assert.False(t, wall)
	assert.Empty(t, g.Walls())

	_, err = g.ToggleWall(CellPosition{X: 3, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, g.SetWall(CellPosition{X: -1, Y: 0}, true), ErrOutOfBounds)
	assert.Nil(t, g.At(CellPosition{X: 0, Y: 3}))
}

func TestResetAndClone(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)
	require.NoError(t, g.SetWall(CellPosition{X: 1, Y: 0}, true))

	c := g.Cells[0][1]
	c.Visited = true
	c.IsPath = true
	c.Parent = &CellPosition{X: 0, Y: 0}
	c.G, c.F, c.Scored = 1, 2, true
	assert.False(t, g.IsFresh())

	clone := g.Clone()
	clone.Cells[0][1].Parent.X = 9
	assert.Equal(t, 0, g.Cells[0][1].Parent.X, "clone must not share parent pointers")
	assert.NotSame(t, g.Cells[0][1], clone.Cells[0][1])

	g.Reset()
	assert.True(t, g.IsFresh())
	assert.True(t, g.Cells[1][0].Wall, "reset keeps walls")
	assert.False(t, clone.IsFresh(), "reset does not leak into clones")
	assert.Equal(t, []CellPosition{{0, 1}}, clone.Visited())
}

func TestLayout(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetWall(CellPosition{X: 1, Y: 1}, true))
	require.NoError(t, g.SetWall(CellPosition{X: 2, Y: 0}, true))

	l := g.Layout(CellPosition{0, 0}, CellPosition{2, 2})
	assert.Equal(t, 3, l.Size)
	assert.Equal(t, []CellPosition{{1, 1}, {2, 0}}, l.Walls)

	restored, err := FromLayout(l)
	require.NoError(t, err)
	assert.Equal(t, g.Walls(), restored.Walls())

	_, err = FromLayout(Layout{Size: 2, End: CellPosition{X: 2, Y: 2}})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = FromLayout(Layout{Size: 0})
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestScatterWalls(t *testing.T) {
	g, err := New(20)
	require.NoError(t, err)
	start, end := CellPosition{0, 0}, CellPosition{19, 19}

	ScatterWalls(g, rand.New(rand.NewSource(7)), DefaultWallCount(20), start, end)
	walls := g.Walls()
	assert.NotEmpty(t, walls)
	assert.LessOrEqual(t, len(walls), DefaultWallCount(20))
	assert.False(t, g.At(start).Wall)
	assert.False(t, g.At(end).Wall)

	again, err := New(20)
	require.NoError(t, err)
	ScatterWalls(again, rand.New(rand.NewSource(7)), DefaultWallCount(20), start, end)
	assert.Equal(t, walls, again.Walls(), "same seed yields the same walls")
}

func TestClusterWalls(t *testing.T) {
	g, err := New(10)
	require.NoError(t, err)
	keep := CellPosition{X: 5, Y: 5}

	err = ClusterWalls(g, rand.New(rand.NewSource(3)), WallModel{Clusters: 4, Steps: 50, Density: 1}, keep)
	require.NoError(t, err)
	assert.NotEmpty(t, g.Walls())
	assert.False(t, g.At(keep).Wall)

	err = ClusterWalls(g, rand.New(rand.NewSource(3)), WallModel{Clusters: 1, Steps: 1, Density: 1.5})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetWall(CellPosition{X: 1, Y: 1}, true))
	g.Cells[0][1].Visited = true
	g.Cells[0][2].Visited = true
	g.Cells[0][2].IsPath = true

	out := g.Render(CellPosition{0, 0}, CellPosition{2, 2})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "+---+", lines[0])
	assert.Equal(t, "|S.*|", lines[1])
	assert.Equal(t, "| # |", lines[2])
	assert.Equal(t, "|  E|", lines[3])

	assert.Equal(t, "wall", g.RoleOf(CellPosition{1, 1}, CellPosition{0, 0}, CellPosition{2, 2}).String())
	assert.Equal(t, RoleEmpty, g.RoleOf(CellPosition{5, 5}, CellPosition{0, 0}, CellPosition{2, 2}))
}
