package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/google/uuid"
)

// BoardView is a read-only snapshot of a board and its current run.
type BoardView struct {
	ID        uuid.UUID
	Layout    grid.Layout
	Visited   []grid.CellPosition
	Path      []grid.CellPosition
	Running   bool
	Algorithm string
	Status    string
}

// StepBatch is the outcome of pulling events from an active run.
type StepBatch struct {
	Events []pathfinding.Event
	Done   bool
	Found  bool
	Status string
}

// SimulationManager owns boards and drives pathfinding runs over them.
type SimulationManager interface {
	CreateBoard(ctx context.Context, size int, randomWalls bool, seed int64) (BoardView, error)
	Board(ctx context.Context, id uuid.UUID) (BoardView, error)
	ToggleWall(ctx context.Context, id uuid.UUID, pos grid.CellPosition) (BoardView, error)
	RandomizeWalls(ctx context.Context, id uuid.UUID, seed int64) (BoardView, error)
	ClearBoard(ctx context.Context, id uuid.UUID) (BoardView, error)
	StartRun(ctx context.Context, id uuid.UUID, strategy pathfinding.Strategy) (uuid.UUID, error)
	Step(ctx context.Context, id uuid.UUID, count int) (StepBatch, error)
	StopRun(ctx context.Context, id uuid.UUID) error
	History(ctx context.Context, id uuid.UUID, limit int) ([]domain.RunSummary, error)
}
