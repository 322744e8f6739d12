package pathfinding

import (
	"fmt"
	"iter"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// Stepper yields the events of a search one at a time.
// ok is false once the terminal done event has been returned.
type Stepper interface {
	Step() (event Event, ok bool)
}

// expander removes the next cell from a strategy's frontier, expands it, and
// returns its position. ok is false when the frontier is exhausted.
// The end cell is returned without being expanded.
type expander interface {
	expand() (pos grid.CellPosition, ok bool)
}

// Search is a single run of a strategy over a grid. It is not restartable:
// running again requires Run on a grid that the previous run no longer owns.
type Search struct {
	strategy Strategy
	grid     *grid.Grid
	start    grid.CellPosition
	end      grid.CellPosition
	frontier expander

	visits  int
	reached bool
	done    bool
	found   bool
}

// Result contains the outcome of a search run to completion.
type Result struct {
	Visits []grid.CellPosition // Expansion order.
	Path   []grid.CellPosition // Start to end, empty when not found.
	Found  bool
}

// Run validates the endpoints, clears the grid's search metadata and returns a
// Search positioned before its first event. Validation errors leave the grid
// untouched.
func Run(strategy Strategy, g *grid.Grid, start, end grid.CellPosition) (*Search, error) {
	if err := validate(strategy, g, start, end); err != nil {
		return nil, err
	}

	g.Reset()

	s := &Search{
		strategy: strategy,
		grid:     g,
		start:    start,
		end:      end,
	}
	switch strategy {
	case BFS:
		s.frontier = newTraversal(g, start, end, newQueue())
	case DFS:
		s.frontier = newTraversal(g, start, end, &stack{})
	case AStar:
		s.frontier = newAStar(g, start, end, Manhattan)
	}
	return s, nil
}

// Solve runs a strategy to completion.
func Solve(strategy Strategy, g *grid.Grid, start, end grid.CellPosition) (Result, error) {
	s, err := Run(strategy, g, start, end)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for event := range All(s) {
		switch event.Type {
		case EventVisit:
			result.Visits = append(result.Visits, event.Position())
		case EventDone:
			result.Found = event.Found
		}
	}
	result.Path = s.Path()
	return result, nil
}

func validate(strategy Strategy, g *grid.Grid, start, end grid.CellPosition) error {
	if g == nil {
		return ErrNilGrid
	}

	switch strategy {
	case BFS, DFS, AStar:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}

	for _, pos := range []grid.CellPosition{start, end} {
		if !g.InBound(pos) {
			return fmt.Errorf("%w: (%d,%d) on a %dx%d grid", ErrInvalidCoordinate, pos.X, pos.Y, g.Size, g.Size)
		}
	}

	for _, pos := range []grid.CellPosition{start, end} {
		if g.At(pos).Wall {
			return fmt.Errorf("%w: (%d,%d)", ErrBlockedEndpoint, pos.X, pos.Y)
		}
	}
	return nil
}

// Step advances the search by one expansion and returns its event.
// After the end cell is visited the next call marks the path and returns
// done(found=true); an exhausted frontier returns done(found=false).
func (s *Search) Step() (Event, bool) {
	if s.done {
		return Event{}, false
	}

	if s.reached {
		Reconstruct(s.grid, s.end)
		s.finish(true)
		return Done(true), true
	}

	pos, ok := s.frontier.expand()
	if !ok {
		s.finish(false)
		return Done(false), true
	}

	s.visits++
	if pos == s.end {
		s.reached = true
	}
	return Visit(pos), true
}

func (s *Search) finish(found bool) {
	s.done = true
	s.found = found
	s.frontier = nil
}

// Strategy returns the strategy driving the search.
func (s *Search) Strategy() Strategy { return s.strategy }

// Grid returns the grid the search mutates.
func (s *Search) Grid() *grid.Grid { return s.grid }

// Endpoints returns the start and end positions.
func (s *Search) Endpoints() (grid.CellPosition, grid.CellPosition) { return s.start, s.end }

// Visits returns the number of visit events yielded so far.
func (s *Search) Visits() int { return s.visits }

// Done reports whether the terminal event has been yielded.
func (s *Search) Done() bool { return s.done }

// Found reports whether the search reached the end. Only meaningful once Done.
func (s *Search) Found() bool { return s.found }

// Path returns the marked path, or nil before a successful completion.
func (s *Search) Path() []grid.CellPosition {
	if !s.done || !s.found {
		return nil
	}
	return Path(s.grid, s.end)
}

// All adapts a Stepper to a range-over-func sequence. Breaking out of the
// loop simply stops pulling steps.
func All(s Stepper) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			event, ok := s.Step()
			if !ok || !yield(event) {
				return
			}
		}
	}
}

// Collect drains up to limit events from s. A limit of zero or less drains
// everything.
func Collect(s Stepper, limit int) []Event {
	var events []Event
	for event := range All(s) {
		events = append(events, event)
		if limit > 0 && len(events) >= limit {
			break
		}
	}
	return events
}
