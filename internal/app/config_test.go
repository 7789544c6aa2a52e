package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "minimal", cfg: Config{LogLevel: "info", LogFormat: "text"}},
		{name: "grass session", cfg: Config{LogLevel: "debug", LogFormat: "json", GrassBin: "grass", Mapset: "/data/PERMANENT"}},
		{name: "bad level", cfg: Config{LogLevel: "trace", LogFormat: "text"}, wantErr: "invalid log level"},
		{name: "bad format", cfg: Config{LogLevel: "info", LogFormat: "xml"}, wantErr: "invalid log format"},
		{name: "mapset without binary", cfg: Config{LogLevel: "info", LogFormat: "text", Mapset: "/data/PERMANENT"}, wantErr: "configured together"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.cfg)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.cfg, *cfg)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for name, want := range tests {
		require.Equal(t, want, parseLogLevel(name), "level %q", name)
	}
}

func TestNewRunLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newRunLogger(&Config{LogLevel: "warn", LogFormat: "text"}, &buf, "run-1")
	logger.Info("hidden")
	logger.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "run_id=run-1")
	require.NotContains(t, buf.String(), "source=")
}

func TestNewRunLogger_JSONDryRunDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newRunLogger(&Config{LogLevel: "debug", LogFormat: "json", DryRun: true}, &buf, "run-2")
	logger.Debug("planned")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "planned", record["msg"])
	require.Equal(t, "run-2", record["run_id"])
	require.Equal(t, true, record["dry_run"])
	require.Contains(t, record, "source")
}
