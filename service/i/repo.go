package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// BoardRepo defines the interface for board layout persistence.
type BoardRepo interface {
	// Save inserts or updates a board in the repository.
	// If the board already exists, it updates the record. Otherwise, it creates a new one.
	Save(ctx context.Context, board *domain.Board) error

	// ByID retrieves a board by its unique ID.
	// Returns an error wrapping ErrBoardNotFound when no such board is stored.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
}
