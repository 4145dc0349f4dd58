package main

import (
	"log/slog"
	"os"

	"github.com/vangoframework/clsx/internal/config"
)

// serverLogger is the JSON logger of the long-running service. It also
// becomes the default logger.
func serverLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}
