package i

import (
	"context"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// RunHistory keeps the most recent run summaries of each board.
type RunHistory interface {
	// Record stores a finished run.
	Record(ctx context.Context, summary domain.RunSummary) error

	// Recent returns up to limit summaries of a board, newest first.
	Recent(ctx context.Context, boardID uuid.UUID, limit int) ([]domain.RunSummary, error)
}
