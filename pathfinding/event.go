package pathfinding

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// EventType identifies the kind of step event.
type EventType string

const (
	EventVisit EventType = "visit" // A cell was expanded.
	EventDone  EventType = "done"  // The search terminated.
)

// Event is a single step of a search. X and Y are set for visit events,
// Found for the done event.
type Event struct {
	Type  EventType `json:"type"`
	X     int       `json:"x"`
	Y     int       `json:"y"`
	Found bool      `json:"found"`
}

// Visit returns a visit event for pos.
func Visit(pos grid.CellPosition) Event {
	return Event{Type: EventVisit, X: pos.X, Y: pos.Y}
}

// Done returns the terminal event.
func Done(found bool) Event {
	return Event{Type: EventDone, Found: found}
}

// Position returns the coordinates carried by a visit event.
func (e Event) Position() grid.CellPosition {
	return grid.CellPosition{X: e.X, Y: e.Y}
}

// Strategy selects the traversal algorithm.
type Strategy int

const (
	BFS Strategy = iota
	DFS
	AStar
)

// Strategies lists every supported strategy in menu order.
var Strategies = []Strategy{BFS, DFS, AStar}

// String returns the display name of the strategy.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case AStar:
		return "A*"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// Accepted names are "bfs", "dfs", "astar" and "a*".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
