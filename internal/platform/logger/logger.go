// Package logger configures the application's structured logging and carries
// request-scoped loggers through context.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/espacios/espacios-api/internal/config"
)

// levels maps configured names to slog levels. Unknown names fall back to
// info with a warning on stderr.
var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Setup builds the application's JSON logger at the configured level and
// installs it as the slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	level, ok := levels[strings.ToLower(cfg.LogLevel)]
	if !ok {
		level = slog.LevelInfo
		slog.New(slog.NewTextHandler(os.Stderr, nil)).
			Warn("unknown log level, falling back to info",
				slog.String("configured_level", cfg.LogLevel))
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, nil
}
