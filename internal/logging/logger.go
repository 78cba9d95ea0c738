package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/predeploy-org/predeploy-cli/internal/config"
)

// NewLogger creates a logger based on runtime configuration. Output goes to
// stderr so stdout stays reserved for command output and the run summary.
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if val := strings.ToLower(os.Getenv("PREDEPLOY_LOG_LEVEL")); val != "" {
		switch val {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			// unknown value, keep default
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner one-shot CLI output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
