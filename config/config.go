package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"callcenter-forecast/sarima"
)

// Split boundaries used when none are configured.
const (
	DEFAULT_TRAIN_CUTOFF     = "2025-08-31"
	DEFAULT_VALIDATION_START = "2025-10-01"
)

// Resources file paths
const DEFAULT_CSV_RESOURCE = "llamadas_callcenter.csv"
const DEFAULT_FRONTEND_DIST = "frontend/dist"

const DEFAULT_RUN_LOG_SIZE = 50

// ModelOrder is the fixed SARIMA(1,1,1)(1,1,1)[7] order of the forecast.
var ModelOrder = sarima.Order{P: 1, D: 1, Q: 1, SP: 1, SD: 1, SQ: 1, M: 7}

// Config holds all configuration for the application
type Config struct {
	Port           string
	LogLevel       string
	AllowedOrigins []string

	CSVPath      string
	FrontendDist string

	TrainCutoff     time.Time
	ValidationStart time.Time

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RunLogSize    int
}

// Load loads configuration from a .env file and environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CSVPath:       getEnv("CSV_PATH", GetResourcePath(DEFAULT_CSV_RESOURCE)),
		FrontendDist:  getEnv("FRONTEND_DIST", GetResourcePath(DEFAULT_FRONTEND_DIST)),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	cfg.AllowedOrigins = strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ",")
	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	var err error
	if cfg.TrainCutoff, err = parseDate("TRAIN_CUTOFF", DEFAULT_TRAIN_CUTOFF); err != nil {
		return nil, err
	}
	if cfg.ValidationStart, err = parseDate("VALIDATION_START", DEFAULT_VALIDATION_START); err != nil {
		return nil, err
	}
	if !cfg.TrainCutoff.Before(cfg.ValidationStart) {
		return nil, fmt.Errorf("TRAIN_CUTOFF %s must be before VALIDATION_START %s",
			cfg.TrainCutoff.Format(time.DateOnly), cfg.ValidationStart.Format(time.DateOnly))
	}

	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.RunLogSize, err = strconv.Atoi(getEnv("RUN_LOG_SIZE", strconv.Itoa(DEFAULT_RUN_LOG_SIZE))); err != nil {
		return nil, fmt.Errorf("invalid RUN_LOG_SIZE: %w", err)
	}
	if cfg.RunLogSize < 1 {
		return nil, fmt.Errorf("invalid RUN_LOG_SIZE: must be positive, got %d", cfg.RunLogSize)
	}

	return cfg, nil
}

// RunLogEnabled reports whether analysis runs are recorded in Redis.
func (c *Config) RunLogEnabled() bool {
	return c.RedisAddr != ""
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), resourceFile)
}

func parseDate(key, defaultValue string) (time.Time, error) {
	raw := getEnv(key, defaultValue)
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return t, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
