// Package domain holds the records shared by the service and its storage adapters.
package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/google/uuid"
)

// Board is the persisted form of a board: its identity and layout.
type Board struct {
	ID        uuid.UUID
	Layout    grid.Layout
	UpdatedAt time.Time
}
