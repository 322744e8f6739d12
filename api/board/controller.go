package boardapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultHistoryLimit = "10"

var ErrMissingDependecy = errors.New("missing board controller dependency")

// BoardController manages boards, their walls and their runs.
type BoardController struct {
	simulations i.SimulationManager
	tokenizer   i.Tokenizer
	tokenTTL    time.Duration
}

// NewBoardController initializes a BoardController. Tokens handed out for
// new boards stay valid for tokenTTL.
func NewBoardController(sm i.SimulationManager, t i.Tokenizer, tokenTTL time.Duration) (*BoardController, error) {
	if sm == nil || t == nil {
		return nil, ErrMissingDependecy
	}
	return &BoardController{
		simulations: sm,
		tokenizer:   t,
		tokenTTL:    tokenTTL,
	}, nil
}

// RegisterPublic registers public routes.
func (bc *BoardController) RegisterPublic(route *gin.RouterGroup) {
	boards := route.Group("/boards")
	{
		boards.POST("", bc.createBoard)
		boards.GET("/:ID", bc.board)
		boards.GET("/:ID/runs", bc.history)
	}
}

// RegisterProtected registers routes that need the board's token.
func (bc *BoardController) RegisterProtected(route *gin.RouterGroup) {
	boards := route.Group("/boards")
	{
		boards.PUT("/:ID/walls", bc.toggleWall)
		boards.POST("/:ID/walls/random", bc.randomizeWalls)
		boards.DELETE("/:ID/walls", bc.clearBoard)
		boards.POST("/:ID/runs", bc.startRun)
		boards.POST("/:ID/runs/current/steps", bc.step)
		boards.DELETE("/:ID/runs/current", bc.stopRun)
	}
}

// createBoard creates a board and returns it with its edit token.
func (bc *BoardController) createBoard(ctx *gin.Context) {
	var request CreateBoardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := bc.simulations.CreateBoard(ctx, request.Size, request.RandomWalls, request.Seed)
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := bc.tokenizer.Generate(map[string]interface{}{ClaimBoardID: view.ID.String()}, bc.tokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing board token"})
		return
	}

	ctx.JSON(http.StatusCreated, CreateBoardResponse{
		Board: toBoardResponse(view),
		Token: token,
	})
}

// board returns the board with its latest run marks.
func (bc *BoardController) board(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	view, err := bc.simulations.Board(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(view))
}

// history returns the board's recent runs, newest first.
func (bc *BoardController) history(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", defaultHistoryLimit))
	if err != nil || limit < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	runs, err := bc.simulations.History(ctx, id, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if runs == nil {
		runs = []domain.RunSummary{}
	}
	ctx.JSON(http.StatusOK, runs)
}

func (bc *BoardController) toggleWall(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request WallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := bc.simulations.ToggleWall(ctx, id, grid.CellPosition{X: *request.X, Y: *request.Y})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(view))
}

func (bc *BoardController) randomizeWalls(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request RandomWallsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := bc.simulations.RandomizeWalls(ctx, id, request.Seed)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(view))
}

func (bc *BoardController) clearBoard(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	view, err := bc.simulations.ClearBoard(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(view))
}

// startRun starts a run; its events are pulled through step.
func (bc *BoardController) startRun(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request StartRunRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy, err := pathfinding.ParseStrategy(request.Algorithm)
	if err != nil {
		respondError(ctx, err)
		return
	}

	runID, err := bc.simulations.StartRun(ctx, id, strategy)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, StartRunResponse{RunID: runID.String()})
}

func (bc *BoardController) step(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	var request StepRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := bc.simulations.Step(ctx, id, request.Count)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStepResponse(batch))
}

func (bc *BoardController) stopRun(ctx *gin.Context) {
	id, ok := boardID(ctx)
	if !ok {
		return
	}

	if err := bc.simulations.StopRun(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// boardID parses the :ID parameter, answering 400 when it is malformed.
func boardID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrBoardNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrRunActive), errors.Is(err, service.ErrNoActiveRun):
		return http.StatusConflict
	case errors.Is(err, service.ErrProtectedCell),
		errors.Is(err, service.ErrInvalidStepCount),
		errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrInvalidDimension),
		errors.Is(err, pathfinding.ErrUnknownStrategy),
		errors.Is(err, pathfinding.ErrInvalidCoordinate),
		errors.Is(err, pathfinding.ErrBlockedEndpoint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
