package logger

import (
	"log/slog"
	"os"

	"github.com/jwebster45206/prolog-resurrected/internal/config"
)

// Setup builds the process logger. Production environments get JSON
// output for log collectors; everything else gets human-readable text.
// The returned logger is also installed as the slog default.
func Setup(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}

// WithSessionID returns a logger that tags every record with the
// session it belongs to.
func WithSessionID(log *slog.Logger, sessionID string) *slog.Logger {
	return log.With("session_id", sessionID)
}
