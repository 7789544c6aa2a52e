package app

import (
	"io"
	"log/slog"
)

// parseLogLevel maps a configured level name onto slog's levels. Names slog
// does not know fall back to info.
func parseLogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// newRunLogger builds the logger for one run. Every record carries runID so
// that the lines of overlapping runs can be told apart; dry runs are tagged
// as well. Debug output includes the source position.
func newRunLogger(cfg *Config, w io.Writer, runID string) *slog.Logger {
	level := parseLogLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(h).With("run_id", runID)
	if cfg.DryRun {
		logger = logger.With("dry_run", true)
	}
	return logger
}
