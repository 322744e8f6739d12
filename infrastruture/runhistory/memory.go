package runhistory

import (
	"context"
	"slices"
	"sync"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

var _ i.RunHistory = &MemoryRunHistory{}

// MemoryRunHistory keeps run summaries in process memory, ordered like the
// Redis set: by completion time.
type MemoryRunHistory struct {
	runs  map[uuid.UUID][]domain.RunSummary
	limit int
	sync.RWMutex
}

// NewMemoryRunHistory creates a history keeping at most limit runs per board.
// A limit of zero or less keeps everything.
func NewMemoryRunHistory(limit int) *MemoryRunHistory {
	return &MemoryRunHistory{
		runs:  make(map[uuid.UUID][]domain.RunSummary),
		limit: limit,
	}
}

// Record stores a finished run.
func (h *MemoryRunHistory) Record(_ context.Context, summary domain.RunSummary) error {
	h.Lock()
	defer h.Unlock()

	runs := append(h.runs[summary.BoardID], summary)
	slices.SortStableFunc(runs, func(a, b domain.RunSummary) int {
		return a.CompletedAt.Compare(b.CompletedAt)
	})
	if h.limit > 0 && len(runs) > h.limit {
		runs = slices.Clone(runs[len(runs)-h.limit:])
	}
	h.runs[summary.BoardID] = runs
	return nil
}

// Recent returns up to limit summaries of a board, newest first.
func (h *MemoryRunHistory) Recent(_ context.Context, boardID uuid.UUID, limit int) ([]domain.RunSummary, error) {
	h.RLock()
	defer h.RUnlock()

	runs := h.runs[boardID]
	out := make([]domain.RunSummary, 0, max(0, min(limit, len(runs))))
	for n := len(runs) - 1; n >= 0 && len(out) < limit; n-- {
		out = append(out, runs[n])
	}
	return out, nil
}
