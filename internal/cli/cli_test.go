package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/grasschain/internal/app"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GRASSCHAIN_PIPELINE", "GRASSCHAIN_GRASS_BIN", "GRASSCHAIN_MAPSET",
		"GRASSCHAIN_LOG_LEVEL", "GRASSCHAIN_LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func TestParse_NoArguments(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRASSCHAIN_LOG_LEVEL", "info")
	t.Setenv("GRASSCHAIN_LOG_FORMAT", "text")

	cfg, exit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, &app.Config{LogLevel: "info", LogFormat: "text"}, cfg)
}

func TestParse_Flags(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRASSCHAIN_LOG_LEVEL", "info")
	t.Setenv("GRASSCHAIN_LOG_FORMAT", "text")

	cfg, exit, err := Parse([]string{
		"-pipeline", "pipelines/",
		"-grass-bin", "grass",
		"-mapset", "/data/nc/PERMANENT",
		"-dry-run",
		"-log-level", "DEBUG",
		"-log-format", "json",
	}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, &app.Config{
		PipelinePath: "pipelines/",
		GrassBin:     "grass",
		Mapset:       "/data/nc/PERMANENT",
		DryRun:       true,
		LogLevel:     "debug",
		LogFormat:    "json",
	}, cfg)
}

func TestParse_EnvironmentDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRASSCHAIN_GRASS_BIN", "/usr/bin/grass")
	t.Setenv("GRASSCHAIN_MAPSET", "/data/nc/user1")
	t.Setenv("GRASSCHAIN_LOG_LEVEL", "warn")
	t.Setenv("GRASSCHAIN_LOG_FORMAT", "json")

	cfg, _, err := Parse([]string{"-log-level", "error"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/grass", cfg.GrassBin)
	require.Equal(t, "/data/nc/user1", cfg.Mapset)
	require.Equal(t, "error", cfg.LogLevel, "flags override the environment")
	require.Equal(t, "json", cfg.LogFormat)
}

func TestParse_Help(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRASSCHAIN_LOG_LEVEL", "info")
	t.Setenv("GRASSCHAIN_LOG_FORMAT", "text")
	out := &bytes.Buffer{}

	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-dry-run")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--bogus"}, wantMsg: "flag provided but not defined: -bogus"},
		{name: "positional argument", args: []string{"elevation"}, wantMsg: "unexpected arguments: elevation"},
		{name: "bad log level", args: []string{"-log-level", "trace"}, wantMsg: "invalid log level"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, wantMsg: "invalid log format"},
		{name: "binary without mapset", args: []string{"-grass-bin", "grass"}, wantMsg: "configured together"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GRASSCHAIN_LOG_LEVEL", "info")
			t.Setenv("GRASSCHAIN_LOG_FORMAT", "text")

			_, exit, err := Parse(tt.args, &bytes.Buffer{})
			require.False(t, exit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %v", err)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tt.wantMsg)
		})
	}
}
