package pathfinding

import "errors"

// Validation errors returned by Run before any grid mutation.
var (
	ErrNilGrid           = errors.New("grid is nil")
	ErrInvalidCoordinate = errors.New("coordinate is outside the grid")
	ErrBlockedEndpoint   = errors.New("start or end cell is a wall")
	ErrUnknownStrategy   = errors.New("unknown search strategy")
)
