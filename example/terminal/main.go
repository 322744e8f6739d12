// Command terminal animates a pathfinding run in the terminal, one frame per
// step event.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/logger"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
)

const (
	clearScreen = "\033[H\033[2J"
	colorBlue   = "\033[34m"
)

func main() {
	var (
		size      = flag.Int("size", 20, "Grid size")
		algorithm = flag.String("algorithm", "astar", "Search strategy: bfs, dfs or astar")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "Seed of the wall generator")
		clusters  = flag.Int("clusters", 0, "Grow this many wall clusters instead of scattering walls")
		delay     = flag.Duration("delay", 30*time.Millisecond, "Pause between frames")
		timeout   = flag.Duration("timeout", 0, "Stop the run after this long; 0 lets it finish")
	)
	flag.Parse()

	log, err := logger.New("TERMINAL", colorBlue, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	strategy, err := pathfinding.ParseStrategy(*algorithm)
	if err != nil {
		log.Error(err.Error())
		os.Exit(2)
	}

	g, err := grid.New(*size)
	if err != nil {
		log.Error(err.Error())
		os.Exit(2)
	}

	start := grid.CellPosition{X: 0, Y: 0}
	end := grid.CellPosition{X: *size - 1, Y: *size - 1}
	r := rand.New(rand.NewSource(*seed))
	if *clusters > 0 {
		model := grid.WallModel{Clusters: *clusters, Steps: *size * 2, Density: 0.6}
		if err := grid.ClusterWalls(g, r, model, start, end); err != nil {
			log.Error(err.Error())
			os.Exit(2)
		}
	} else {
		grid.ScatterWalls(g, r, grid.DefaultWallCount(*size), start, end)
	}

	search, err := pathfinding.Run(strategy, g, start, end)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	status := animate(os.Stdout, search, *delay, *timeout)
	log.Info(fmt.Sprintf("%s: %s, visited=%d path=%d seed=%d", strategy, status, search.Visits(), pathLength(search), *seed))
}

// animate draws a frame for every event of search. Once timeout has elapsed
// it stops pulling events; a zero timeout lets the run finish. It returns the
// status of the run.
func animate(w io.Writer, search *pathfinding.Search, delay, timeout time.Duration) string {
	g := search.Grid()
	started := time.Now()
	for {
		if timeout > 0 && time.Since(started) >= timeout {
			break
		}
		event, ok := search.Step()
		if !ok {
			break
		}

		fmt.Fprint(w, clearScreen, g.Render(search.Endpoints()))
		if event.Type == pathfinding.EventVisit {
			fmt.Fprintf(w, "%s visiting (%d,%d)\n", search.Strategy(), event.X, event.Y)
		}
		time.Sleep(delay)
	}

	fmt.Fprint(w, clearScreen, g.Render(search.Endpoints()))
	return runStatus(search)
}

func runStatus(search *pathfinding.Search) string {
	switch {
	case !search.Done():
		return domain.RunStatusStopped
	case search.Found():
		return domain.RunStatusCompleted
	default:
		return domain.RunStatusNoPath
	}
}

// pathLength counts the edges of the found path, zero when there is none.
func pathLength(search *pathfinding.Search) int {
	if path := search.Path(); len(path) > 0 {
		return len(path) - 1
	}
	return 0
}
