package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported values for STORE_BACKEND.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

// Runtime settings shared by the server and rosterctl.
type Config struct {
	Port           string
	Backend        string
	DBPath         string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	StatePath      string
	StateKey       string
	SeedPath       string
	LogLevel       string
	CappedProgress bool
}

// Load reads an optional .env file and then the process environment.
// It reports whether a .env file was found so callers can log it.
func Load() (*Config, bool, error) {
	foundEnv := godotenv.Load() == nil

	redisDB, err := strconv.Atoi(Get("REDIS_DB", "0"))
	if err != nil {
		return nil, foundEnv, fmt.Errorf("load config: REDIS_DB: %w", err)
	}

	capped, err := strconv.ParseBool(Get("PROGRESS_CAPPED", "false"))
	if err != nil {
		return nil, foundEnv, fmt.Errorf("load config: PROGRESS_CAPPED: %w", err)
	}

	cfg := &Config{
		Port:           Get("PORT", "8080"),
		Backend:        strings.ToLower(Get("STORE_BACKEND", BackendSQLite)),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      Get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		StatePath:      Get("STATE_PATH", "data/driver-store.json"),
		StateKey:       Get("STATE_KEY", "driver-store"),
		SeedPath:       Get("SEED_PATH", "data/seeds/drivers.yaml"),
		LogLevel:       Get("LOG_LEVEL", "info"),
		CappedProgress: capped,
	}

	if err := cfg.Validate(); err != nil {
		return nil, foundEnv, err
	}
	return cfg, foundEnv, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("config: DB_PATH is required for the %s backend", c.Backend)
		}
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the %s backend", c.Backend)
		}
	case BackendRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("config: REDIS_ADDR is required for the %s backend", c.Backend)
		}
	case BackendFile:
		if strings.TrimSpace(c.StatePath) == "" {
			return fmt.Errorf("config: STATE_PATH is required for the %s backend", c.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.Backend)
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
