package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultGridSize     = 20
	defaultMaxStepBatch = 500
	defaultHistoryLimit = 10

	statusIdle    = "Idle"
	statusRunning = "Simulation Started"
)

var (
	ErrRunActive        = errors.New("a run is active on this board")
	ErrNoActiveRun      = errors.New("no active run on this board")
	ErrProtectedCell    = errors.New("start and end cells cannot hold walls")
	ErrInvalidStepCount = errors.New("step count must be positive")
	ErrMissingDependecy = errors.New("missing simulation dependency")
)

var _ i.SimulationManager = &SimulationManager{}

// session is a live board. The active run owns the grid: walls cannot change
// until it finishes or is stopped.
type session struct {
	id         uuid.UUID
	grid       *grid.Grid
	start, end grid.CellPosition
	run        *activeRun
	last       *domain.RunSummary
	sync.Mutex
}

type activeRun struct {
	id        uuid.UUID
	search    *pathfinding.Search
	startedAt time.Time
}

// SimulationManager keeps boards in memory, persists their layouts and drives
// pathfinding runs step by step.
type SimulationManager struct {
	boards       map[uuid.UUID]*session
	repo         i.BoardRepo
	history      i.RunHistory
	logger       i.Logger
	gridSize     int
	maxStepBatch int
	now          func() time.Time
	sync.RWMutex
}

// Config holds the dependencies and limits of a SimulationManager.
type Config struct {
	BoardRepo    i.BoardRepo
	RunHistory   i.RunHistory
	Logger       i.Logger
	GridSize     int // Size of boards created without an explicit size.
	MaxStepBatch int // Upper bound on events returned by a single Step call.
}

// NewSimulationManager creates a SimulationManager from c.
func NewSimulationManager(c *Config) (*SimulationManager, error) {
	if c == nil || c.BoardRepo == nil || c.RunHistory == nil || c.Logger == nil {
		return nil, ErrMissingDependecy
	}

	sm := &SimulationManager{
		boards:       make(map[uuid.UUID]*session),
		repo:         c.BoardRepo,
		history:      c.RunHistory,
		logger:       c.Logger,
		gridSize:     c.GridSize,
		maxStepBatch: c.MaxStepBatch,
		now:          time.Now,
	}
	if sm.gridSize <= 0 {
		sm.gridSize = defaultGridSize
	}
	if sm.maxStepBatch <= 0 {
		sm.maxStepBatch = defaultMaxStepBatch
	}
	return sm, nil
}

// CreateBoard creates a board with start at the top-left corner and end at the
// bottom-right one. A zero size uses the configured default, and a zero seed
// draws one from the clock.
func (sm *SimulationManager) CreateBoard(ctx context.Context, size int, randomWalls bool, seed int64) (i.BoardView, error) {
	if size == 0 {
		size = sm.gridSize
	}

	g, err := grid.New(size)
	if err != nil {
		return i.BoardView{}, err
	}

	s := &session{
		id:    uuid.New(),
		grid:  g,
		start: grid.CellPosition{X: 0, Y: 0},
		end:   grid.CellPosition{X: size - 1, Y: size - 1},
	}
	if randomWalls {
		grid.ScatterWalls(g, sm.random(seed), grid.DefaultWallCount(size), s.start, s.end)
	}

	if err := sm.persist(ctx, s); err != nil {
		return i.BoardView{}, err
	}

	sm.Lock()
	sm.boards[s.id] = s
	sm.Unlock()

	sm.logger.Info(fmt.Sprintf("Board created: ID=%s Size=%d Walls=%d", s.id, size, len(g.Walls())))
	s.Lock()
	defer s.Unlock()
	return sm.view(s), nil
}

// Board returns a snapshot of the board.
func (sm *SimulationManager) Board(ctx context.Context, id uuid.UUID) (i.BoardView, error) {
	s, err := sm.session(ctx, id)
	if err != nil {
		return i.BoardView{}, err
	}

	s.Lock()
	defer s.Unlock()
	return sm.view(s), nil
}

// ToggleWall flips the wall at pos. Start and end cannot be walled, and no
// wall changes while a run is active.
func (sm *SimulationManager) ToggleWall(ctx context.Context, id uuid.UUID, pos grid.CellPosition) (i.BoardView, error) {
	return sm.edit(ctx, id, func(s *session) error {
		if pos == s.start || pos == s.end {
			return ErrProtectedCell
		}
		_, err := s.grid.ToggleWall(pos)
		return err
	})
}

// RandomizeWalls replaces the board's walls with a third of its cells drawn at
// random and clears the previous run's marks.
func (sm *SimulationManager) RandomizeWalls(ctx context.Context, id uuid.UUID, seed int64) (i.BoardView, error) {
	return sm.edit(ctx, id, func(s *session) error {
		grid.ScatterWalls(s.grid, sm.random(seed), grid.DefaultWallCount(s.grid.Size), s.start, s.end)
		s.grid.Reset()
		s.last = nil
		return nil
	})
}

// ClearBoard removes every wall and every search mark.
func (sm *SimulationManager) ClearBoard(ctx context.Context, id uuid.UUID) (i.BoardView, error) {
	return sm.edit(ctx, id, func(s *session) error {
		s.grid.ClearWalls()
		s.grid.Reset()
		s.last = nil
		return nil
	})
}

// StartRun hands the board's grid to a new search. Steps are pulled with Step.
func (sm *SimulationManager) StartRun(ctx context.Context, id uuid.UUID, strategy pathfinding.Strategy) (uuid.UUID, error) {
	s, err := sm.session(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}

	s.Lock()
	defer s.Unlock()
	if s.run != nil {
		return uuid.Nil, ErrRunActive
	}

	search, err := pathfinding.Run(strategy, s.grid, s.start, s.end)
	if err != nil {
		return uuid.Nil, err
	}

	s.run = &activeRun{
		id:        uuid.New(),
		search:    search,
		startedAt: sm.now(),
	}
	s.last = nil
	sm.logger.Info(fmt.Sprintf("Run started: Board=%s Run=%s Algorithm=%s", s.id, s.run.id, strategy))
	return s.run.id, nil
}

// Step pulls up to count events from the active run. count is capped by the
// configured batch limit. When the run yields its done event it is finished
// and recorded.
func (sm *SimulationManager) Step(ctx context.Context, id uuid.UUID, count int) (i.StepBatch, error) {
	if count <= 0 {
		return i.StepBatch{}, ErrInvalidStepCount
	}
	count = min(count, sm.maxStepBatch)

	s, err := sm.session(ctx, id)
	if err != nil {
		return i.StepBatch{}, err
	}

	s.Lock()
	defer s.Unlock()
	if s.run == nil {
		return i.StepBatch{}, ErrNoActiveRun
	}

	search := s.run.search
	batch := i.StepBatch{
		Events: pathfinding.Collect(search, count),
		Status: statusRunning,
	}
	if search.Done() {
		status := domain.RunStatusNoPath
		if search.Found() {
			status = domain.RunStatusCompleted
		}
		sm.finish(ctx, s, status)
		batch.Done = true
		batch.Found = search.Found()
		batch.Status = status
	}
	return batch, nil
}

// StopRun abandons the active run. The grid keeps the marks made so far.
func (sm *SimulationManager) StopRun(ctx context.Context, id uuid.UUID) error {
	s, err := sm.session(ctx, id)
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()
	if s.run == nil {
		return ErrNoActiveRun
	}
	sm.finish(ctx, s, domain.RunStatusStopped)
	return nil
}

// History returns the most recent runs of a board, newest first.
func (sm *SimulationManager) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.RunSummary, error) {
	if _, err := sm.session(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return sm.history.Recent(ctx, id, limit)
}

// edit applies a wall mutation to an idle board and persists the new layout.
func (sm *SimulationManager) edit(ctx context.Context, id uuid.UUID, mutate func(*session) error) (i.BoardView, error) {
	s, err := sm.session(ctx, id)
	if err != nil {
		return i.BoardView{}, err
	}

	s.Lock()
	defer s.Unlock()
	if s.run != nil {
		return i.BoardView{}, ErrRunActive
	}
	if err := mutate(s); err != nil {
		return i.BoardView{}, err
	}
	if err := sm.persist(ctx, s); err != nil {
		return i.BoardView{}, err
	}
	return sm.view(s), nil
}

// finish records the active run and releases the grid. Callers hold s.
func (sm *SimulationManager) finish(ctx context.Context, s *session, status string) {
	search := s.run.search
	summary := domain.RunSummary{
		ID:          s.run.id,
		BoardID:     s.id,
		Algorithm:   search.Strategy().String(),
		Status:      status,
		Found:       search.Found(),
		Visited:     search.Visits(),
		StartedAt:   s.run.startedAt,
		CompletedAt: sm.now(),
	}
	if path := search.Path(); len(path) > 0 {
		summary.PathLength = len(path) - 1
	}

	s.run = nil
	s.last = &summary
	sm.logger.Info(fmt.Sprintf("Run finished: Board=%s Run=%s Status=%q Visited=%d PathLength=%d",
		summary.BoardID, summary.ID, summary.Status, summary.Visited, summary.PathLength))

	if err := sm.history.Record(ctx, summary); err != nil {
		sm.logger.Warning(fmt.Sprintf("Failed to record run %s: %s", summary.ID, err))
	}
}

// session returns the live board with the given ID, restoring it from the
// repository when it is not in memory.
func (sm *SimulationManager) session(ctx context.Context, id uuid.UUID) (*session, error) {
	sm.RLock()
	s, ok := sm.boards[id]
	sm.RUnlock()
	if ok {
		return s, nil
	}

	board, err := sm.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := grid.FromLayout(board.Layout)
	if err != nil {
		return nil, fmt.Errorf("restoring board %s: %w", id, err)
	}

	sm.Lock()
	defer sm.Unlock()
	if s, ok := sm.boards[id]; ok {
		return s, nil
	}
	s = &session{
		id:    board.ID,
		grid:  g,
		start: board.Layout.Start,
		end:   board.Layout.End,
	}
	sm.boards[id] = s
	sm.logger.Info(fmt.Sprintf("Board restored: ID=%s", id))
	return s, nil
}

func (sm *SimulationManager) persist(ctx context.Context, s *session) error {
	err := sm.repo.Save(ctx, &domain.Board{
		ID:        s.id,
		Layout:    s.grid.Layout(s.start, s.end),
		UpdatedAt: sm.now(),
	})
	if err != nil {
		sm.logger.Error(fmt.Sprintf("Failed to save board %s: %s", s.id, err))
	}
	return err
}

// view snapshots a board. Callers hold s.
func (sm *SimulationManager) view(s *session) i.BoardView {
	v := i.BoardView{
		ID:      s.id,
		Layout:  s.grid.Layout(s.start, s.end),
		Visited: s.grid.Visited(),
		Path:    pathfinding.Path(s.grid, s.end),
		Status:  statusIdle,
	}
	switch {
	case s.run != nil:
		v.Running = true
		v.Algorithm = s.run.search.Strategy().String()
		v.Status = statusRunning
	case s.last != nil:
		v.Algorithm = s.last.Algorithm
		v.Status = s.last.Status
	}
	return v
}

func (sm *SimulationManager) random(seed int64) *rand.Rand {
	if seed == 0 {
		seed = sm.now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
