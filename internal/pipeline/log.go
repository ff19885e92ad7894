package pipeline

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// LogLevelEnv names the environment variable that selects the log level.
// "debug" enables per-stage detail; anything else logs at info.
const LogLevelEnv = "RING_SEPARATOR_LOG_LEVEL"

// NewLogger creates a logger with timestamp formatting that writes to w and
// filters messages at level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// LevelFromEnv maps the value of LogLevelEnv to a log level.
func LevelFromEnv(value string) log.Level {
	if strings.EqualFold(strings.TrimSpace(value), "debug") {
		return log.DebugLevel
	}
	return log.InfoLevel
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a new context carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func LoggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
