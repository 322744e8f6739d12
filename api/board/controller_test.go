package boardapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/logger"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/runhistory"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	log, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)

	sm, err := service.NewSimulationManager(&service.Config{
		BoardRepo:  repo.NewMemoryBoardRepo(),
		RunHistory: runhistory.NewMemoryRunHistory(0),
		Logger:     log,
		GridSize:   5,
	})
	require.NoError(t, err)

	tokenizer := token.NewJwtService("test-secret", "pathfinder-test")
	controller, err := NewBoardController(sm, tokenizer, time.Hour)
	require.NoError(t, err)

	return api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []api_i.Controller{controller},
		AuthorizationMiddleware: Authoriz(tokenizer),
	}).Handler()
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func createBoard(t *testing.T, h http.Handler, size int) CreateBoardResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/boards", "", CreateBoardRequest{Size: size})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[CreateBoardResponse](t, rec)
}

func TestCreateAndReadBoard(t *testing.T) {
	h := newTestServer(t)

	t.Run("explicit size", func(t *testing.T) {
		created := createBoard(t, h, 3)
		assert.NotEmpty(t, created.Token)
		assert.Equal(t, 3, created.Board.Size)
		assert.Equal(t, grid.CellPosition{X: 2, Y: 2}, created.Board.End)
		assert.NotNil(t, created.Board.Walls)
		assert.Equal(t, "Idle", created.Board.Status)

		rec := do(t, h, http.MethodGet, "/api/v1/boards/"+created.Board.ID, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.Board, decode[BoardResponse](t, rec))
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/boards", "", nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, 5, decode[CreateBoardResponse](t, rec).Board.Size)
	})

	t.Run("random walls", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/boards", "", CreateBoardRequest{Size: 10, RandomWalls: true, Seed: 3})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, decode[CreateBoardResponse](t, rec).Board.Walls)
	})

	t.Run("invalid size", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/v1/boards", "", CreateBoardRequest{Size: 500})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown and malformed ids", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/v1/boards/"+uuid.NewString(), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = do(t, h, http.MethodGet, "/api/v1/boards/not-a-uuid", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthorization(t *testing.T) {
	h := newTestServer(t)
	mine := createBoard(t, h, 3)
	other := createBoard(t, h, 3)
	path := "/api/v1/boards/" + mine.Board.ID + "/walls"
	wall := map[string]int{"x": 1, "y": 1}

	rec := do(t, h, http.MethodPut, path, "", wall)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPut, path, "not-a-jwt", wall)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPut, path, nil)
	req.Header.Set("Authorization", "Token "+mine.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPut, path, other.Token, wall)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h, http.MethodPut, path, mine.Token, wall)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWallRoutes(t *testing.T) {
	h := newTestServer(t)
	created := createBoard(t, h, 4)
	base := "/api/v1/boards/" + created.Board.ID

	rec := do(t, h, http.MethodPut, base+"/walls", created.Token, map[string]int{"x": 0, "y": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []grid.CellPosition{{X: 0, Y: 2}}, decode[BoardResponse](t, rec).Walls)

	rec = do(t, h, http.MethodPut, base+"/walls", created.Token, map[string]int{"x": 0, "y": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "start is protected")

	rec = do(t, h, http.MethodPut, base+"/walls", created.Token, map[string]int{"x": 9, "y": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, base+"/walls", created.Token, map[string]int{"x": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "y is required")

	rec = do(t, h, http.MethodPost, base+"/walls/random", created.Token, RandomWallsRequest{Seed: 11})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[BoardResponse](t, rec).Walls)

	rec = do(t, h, http.MethodDelete, base+"/walls", created.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[BoardResponse](t, rec).Walls)
}

func TestRunRoutes(t *testing.T) {
	h := newTestServer(t)
	created := createBoard(t, h, 3)
	base := "/api/v1/boards/" + created.Board.ID

	rec := do(t, h, http.MethodPost, base+"/runs/current/steps", created.Token, StepRequest{Count: 1})
	assert.Equal(t, http.StatusConflict, rec.Code, "no active run")

	rec = do(t, h, http.MethodPost, base+"/runs", created.Token, StartRunRequest{Algorithm: "dijkstra"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/runs", created.Token, StartRunRequest{Algorithm: "bfs"})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	runID := decode[StartRunResponse](t, rec).RunID
	assert.NotEmpty(t, runID)

	rec = do(t, h, http.MethodPost, base+"/runs", created.Token, StartRunRequest{Algorithm: "dfs"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPut, base+"/walls", created.Token, map[string]int{"x": 1, "y": 1})
	assert.Equal(t, http.StatusConflict, rec.Code, "walls are frozen while running")

	rec = do(t, h, http.MethodPost, base+"/runs/current/steps", created.Token, StepRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/runs/current/steps", created.Token, StepRequest{Count: 2})
	require.Equal(t, http.StatusOK, rec.Code)
	first := decode[StepResponse](t, rec)
	assert.Equal(t, []pathfinding.Event{
		pathfinding.Visit(grid.CellPosition{X: 0, Y: 0}),
		pathfinding.Visit(grid.CellPosition{X: 1, Y: 0}),
	}, first.Events)
	assert.False(t, first.Done)

	rec = do(t, h, http.MethodPost, base+"/runs/current/steps", created.Token, StepRequest{Count: 100})
	require.Equal(t, http.StatusOK, rec.Code)
	rest := decode[StepResponse](t, rec)
	assert.True(t, rest.Done)
	assert.True(t, rest.Found)
	assert.Equal(t, domain.RunStatusCompleted, rest.Status)
	assert.Equal(t, pathfinding.Done(true), rest.Events[len(rest.Events)-1])

	rec = do(t, h, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[BoardResponse](t, rec)
	assert.Len(t, board.Path, 5)
	assert.Equal(t, "BFS", board.Algorithm)

	rec = do(t, h, http.MethodGet, base+"/runs?limit=5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	runs := decode[[]domain.RunSummary](t, rec)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID.String())

	rec = do(t, h, http.MethodGet, base+"/runs?limit=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStopRoute(t *testing.T) {
	h := newTestServer(t)
	created := createBoard(t, h, 5)
	base := "/api/v1/boards/" + created.Board.ID

	rec := do(t, h, http.MethodDelete, base+"/runs/current", created.Token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/runs", created.Token, StartRunRequest{Algorithm: "a*"})
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = do(t, h, http.MethodDelete, base+"/runs/current", created.Token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[BoardResponse](t, rec)
	assert.False(t, board.Running)
	assert.Equal(t, domain.RunStatusStopped, board.Status)
	assert.Equal(t, "A*", board.Algorithm)
}
