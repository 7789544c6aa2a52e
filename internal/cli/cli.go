package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/grasschain/internal/app"
	"github.com/specialistvlad/grasschain/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := config.ParseEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("grasschain", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
grasschain - runs a fixed chain of GRASS GIS modules.

With no options it aligns the region to elev_lid792_1m at 4 m, resamples the
raster into elev_resampled and buffers firestations by 20 into buffers, with
GRASS_OVERWRITE=1. Run it inside a GRASS session, or pass -grass-bin and
-mapset to start one per module.

Usage:
  grasschain [options]

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprint(output, `
Environment:
  GRASSCHAIN_PIPELINE, GRASSCHAIN_GRASS_BIN, GRASSCHAIN_MAPSET,
  GRASSCHAIN_LOG_LEVEL, GRASSCHAIN_LOG_FORMAT provide option defaults.
`)
	}

	pipelineFlag := flagSet.String("pipeline", defaults.PipelinePath, "Path to a pipeline file or a directory of .hcl files. Empty runs the built-in pipeline.")
	grassBinFlag := flagSet.String("grass-bin", defaults.GrassBin, "GRASS executable used to run each module with --exec. Requires -mapset.")
	mapsetFlag := flagSet.String("mapset", defaults.Mapset, "Path to the GRASS mapset modules run in. Requires -grass-bin.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the GRASS commands instead of running them.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	cfg, err := app.NewConfig(app.Config{
		PipelinePath: *pipelineFlag,
		GrassBin:     *grassBinFlag,
		Mapset:       *mapsetFlag,
		DryRun:       *dryRunFlag,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
