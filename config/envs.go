package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string        // Host IP for the server
	RESTPort        int           // Port for the REST API
	GinMode         string        // Mode for the Gin framework (e.g., release, debug, test)
	GridSize        int           // Size of boards created without an explicit size
	MaxStepBatch    int           // Upper bound on events returned by one step request
	DBHost          string        // Hostname or IP address for the database; empty keeps boards in memory
	DBPort          int           // Port number for the database
	DBUser          string        // Username for the database
	DBPassword      string        // Password for the database
	DBName          string        // Name of the database
	RedisAddr       string        // host:port of Redis; empty keeps run history in memory
	RedisPassword   string        // Password for Redis
	RunHistoryTTL   time.Duration // Lifetime of a board's run history
	RunHistoryLimit int           // Number of runs kept per board
	JWTSecret       string        // Secret key for JWT signing
	JWTIssuer       string        // Issuer claim for JWTs
	BoardTokenTTL   time.Duration // Lifetime of a board edit token
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	c := Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		GridSize:        getEnvAsIntWithDefault("GRID_SIZE", 20),
		MaxStepBatch:    getEnvAsIntWithDefault("MAX_STEP_BATCH", 500),
		DBHost:          getEnvWithDefault("DB_HOST", ""),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		RunHistoryTTL:   getEnvAsDurationWithDefault("RUN_HISTORY_TTL", 24*time.Hour),
		RunHistoryLimit: getEnvAsIntWithDefault("RUN_HISTORY_LIMIT", 20),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-pathfinder"),
		BoardTokenTTL:   getEnvAsDurationWithDefault("BOARD_TOKEN_TTL", 12*time.Hour),
	}

	// The database settings are only required once a database host is given.
	if c.DBHost != "" {
		c.DBPort = mustGetEnvAsInt("DB_PORT")
		c.DBUser = mustGetEnv("DB_USER")
		c.DBPassword = mustGetEnv("DB_PASS")
		c.DBName = mustGetEnv("DB_NAME")
	}
	return c
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsDurationWithDefault parses values such as "90s" or "24h".
func getEnvAsDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a duration: %v", key, err)
	}
	return value
}
