package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	RedisURL    string        // e.g. "redis://localhost:6379/0"; empty disables Redis
	SQLitePath  string        // progress database file
	DataDir     string        // complexity config overrides
	SnapshotTTL time.Duration // lifetime of saved sessions
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:    getEnv("REDIS_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "data/progress.db"),
		DataDir:     getEnv("DATA_DIR", "data/complexity"),
		SnapshotTTL: parseDuration(getEnv("SNAPSHOT_TTL", "24h"), 24*time.Hour),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
