package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/environ"
	"github.com/specialistvlad/grasschain/internal/executor"
)

// Run prepares the GRASS environment, plans the pipeline and executes it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	env := a.prepareEnv()
	a.logger.Debug("GRASS environment prepared.", "overwrite", env.Overwrite(), "vars", len(env))

	tasks, err := a.Plan(ctx)
	if err != nil {
		return fmt.Errorf("failed to plan pipeline: %w", err)
	}

	if len(tasks) == 0 {
		a.logger.Warn("No steps to run, execution not required.")
		return nil
	}

	a.logger.Info("🚀 Starting pipeline...", "steps", len(tasks))
	if err := executor.New(a.engine, env).Run(ctx, tasks); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Pipeline finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// prepareEnv copies the base environment and forces GRASS_OVERWRITE=1. The
// result is not modified afterwards.
func (a *App) prepareEnv() environ.Env {
	var env environ.Env
	if a.baseEnv != nil {
		env = a.baseEnv.Clone()
	} else {
		env = environ.FromOS()
	}
	env.EnableOverwrite()
	return env
}
