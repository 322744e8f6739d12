package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

var _ i.BoardRepo = &MemoryBoardRepo{}

// MemoryBoardRepo keeps boards in process memory. It is used when no database
// is configured.
type MemoryBoardRepo struct {
	boards map[uuid.UUID]dmn.Board
	sync.RWMutex
}

// NewMemoryBoardRepo creates an empty MemoryBoardRepo.
func NewMemoryBoardRepo() *MemoryBoardRepo {
	return &MemoryBoardRepo{boards: make(map[uuid.UUID]dmn.Board)}
}

// Save stores a copy of board, replacing any previous version.
func (m *MemoryBoardRepo) Save(_ context.Context, board *dmn.Board) error {
	stored := *board
	stored.Layout.Walls = slices.Clone(board.Layout.Walls)

	m.Lock()
	defer m.Unlock()
	m.boards[board.ID] = stored
	return nil
}

// ByID returns a copy of the stored board.
func (m *MemoryBoardRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Board, error) {
	m.RLock()
	defer m.RUnlock()

	stored, ok := m.boards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dmn.ErrBoardNotFound, id)
	}
	stored.Layout.Walls = slices.Clone(stored.Layout.Walls)
	return &stored, nil
}
