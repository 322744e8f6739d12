// Package pathfinding searches a grid.Grid from a start cell to an end cell with
// breadth-first search, depth-first search or A*.
//
// It exposes two entry points:
//
//   - Run: validate the endpoints, reset the grid and return a Search that
//     advances one expansion per Step, for driving visualisations.
//   - Solve: run a search to completion and get a Result.
//
// A Search owns its grid until it yields the terminal done event. It yields a
// visit event every time a cell is expanded and exactly one done event at the
// end; the path is marked on the grid before the done event is returned.
package pathfinding
