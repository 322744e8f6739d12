package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses reported to clients.
const (
	RunStatusCompleted = "Simulation Completed"
	RunStatusNoPath    = "No path found or path is blocked"
	RunStatusStopped   = "Simulation Stopped"
)

// RunSummary records the outcome of one finished or stopped run.
type RunSummary struct {
	ID          uuid.UUID `json:"id"`
	BoardID     uuid.UUID `json:"boardId"`
	Algorithm   string    `json:"algorithm"`
	Status      string    `json:"status"`
	Found       bool      `json:"found"`
	Visited     int       `json:"visited"`
	PathLength  int       `json:"pathLength"` // Edges on the path, zero when not found.
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt"`
}
