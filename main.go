package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	boardapi "github.com/beka-birhanu/vinom-pathfinder/api/board"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/logger"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/runhistory"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient       *mongo.Client
	redisClient       *redis.Client
	boardRepo         i.BoardRepo
	runHistory        i.RunHistory
	simulationManager i.SimulationManager
	jwtTokenizer      i.Tokenizer
	boardController   api_i.Controller
	router            *api.Router
	appLogger         i.Logger
)

func newLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	if config.Envs.DBHost == "" {
		appLogger.Warning("DB_HOST is not set, boards are kept in memory")
		return
	}

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR is not set, run history is kept in memory")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initBoardRepo() {
	if mongoClient == nil {
		boardRepo = repo.NewMemoryBoardRepo()
	} else {
		boardRepo = repo.NewBoardRepo(mongoClient, config.Envs.DBName, "boards")
	}
	appLogger.Info("Board repository initialized")
}

func initRunHistory() {
	if redisClient == nil {
		runHistory = runhistory.NewMemoryRunHistory(config.Envs.RunHistoryLimit)
	} else {
		runHistory = runhistory.NewRedisRunHistory(redisClient, config.Envs.RunHistoryTTL, config.Envs.RunHistoryLimit)
	}
	appLogger.Info("Run history initialized")
}

func initSimulationManager() {
	var err error
	simulationManager, err = service.NewSimulationManager(&service.Config{
		BoardRepo:    boardRepo,
		RunHistory:   runHistory,
		Logger:       newLogger("SIMULATION", config.ColorCyan),
		GridSize:     config.Envs.GridSize,
		MaxStepBatch: config.Envs.MaxStepBatch,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Simulation manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initBoardController() {
	var err error
	boardController, err = boardapi.NewBoardController(simulationManager, jwtTokenizer, config.Envs.BoardTokenTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating board controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Board controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{boardController},
		AuthorizationMiddleware: boardapi.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger = newLogger("APP", config.ColorGreen)

	initMongo(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
	}()

	initRedis(ctx)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initBoardRepo()
	initRunHistory()
	initSimulationManager()
	initJWTTokenizer()
	initBoardController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
