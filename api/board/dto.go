// Package boardapi exposes boards and their pathfinding runs over HTTP.
package boardapi

import (
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

// CreateBoardRequest represents a request to create a board. Every field is
// optional: a zero size uses the server default and a zero seed a random one.
type CreateBoardRequest struct {
	Size        int   `json:"size"`
	RandomWalls bool  `json:"randomWalls"`
	Seed        int64 `json:"seed"`
}

// WallRequest names the cell whose wall is toggled.
type WallRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// RandomWallsRequest represents a request to regenerate a board's walls.
type RandomWallsRequest struct {
	Seed int64 `json:"seed"`
}

// StartRunRequest names the search strategy of a new run.
type StartRunRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
}

// StepRequest asks for up to Count events of the active run.
type StepRequest struct {
	Count int `json:"count" binding:"required,min=1"`
}

// BoardResponse represents a board, its walls and the marks of its latest run.
type BoardResponse struct {
	ID        string              `json:"id"`
	Size      int                 `json:"size"`
	Start     grid.CellPosition   `json:"start"`
	End       grid.CellPosition   `json:"end"`
	Walls     []grid.CellPosition `json:"walls"`
	Visited   []grid.CellPosition `json:"visited"`
	Path      []grid.CellPosition `json:"path"`
	Running   bool                `json:"running"`
	Algorithm string              `json:"algorithm,omitempty"`
	Status    string              `json:"status"`
}

// CreateBoardResponse carries the new board and the token that allows editing it.
type CreateBoardResponse struct {
	Board BoardResponse `json:"board"`
	Token string        `json:"token"`
}

// StartRunResponse represents the ID of a started run.
type StartRunResponse struct {
	RunID string `json:"runId"`
}

// StepResponse represents a batch of run events.
type StepResponse struct {
	Events []pathfinding.Event `json:"events"`
	Done   bool                `json:"done"`
	Found  bool                `json:"found"`
	Status string              `json:"status"`
}

func nonNil(cells []grid.CellPosition) []grid.CellPosition {
	if cells == nil {
		return []grid.CellPosition{}
	}
	return cells
}

func toBoardResponse(v i.BoardView) BoardResponse {
	return BoardResponse{
		ID:        v.ID.String(),
		Size:      v.Layout.Size,
		Start:     v.Layout.Start,
		End:       v.Layout.End,
		Walls:     nonNil(v.Layout.Walls),
		Visited:   nonNil(v.Visited),
		Path:      nonNil(v.Path),
		Running:   v.Running,
		Algorithm: v.Algorithm,
		Status:    v.Status,
	}
}

func toStepResponse(b i.StepBatch) StepResponse {
	events := b.Events
	if events == nil {
		events = []pathfinding.Event{}
	}
	return StepResponse{
		Events: events,
		Done:   b.Done,
		Found:  b.Found,
		Status: b.Status,
	}
}
