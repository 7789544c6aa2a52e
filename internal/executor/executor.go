package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/environ"
	"github.com/specialistvlad/grasschain/internal/grass"
)

// Task is a pipeline step bound to the operation built for it.
type Task struct {
	// StepID is "<module>.<name>" of the originating step.
	StepID string
	// Description is the step's optional free-text description.
	Description string
	Operation   *grass.Operation
}

// Executor runs tasks sequentially with a fixed environment.
type Executor struct {
	engine grass.Engine
	env    environ.Env
}

// New creates an executor. env is passed unchanged to every engine call.
func New(engine grass.Engine, env environ.Env) *Executor {
	return &Executor{engine: engine, env: env}
}

// Run executes tasks in order and stops at the first error.
func (e *Executor) Run(ctx context.Context, tasks []Task) error {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	for i, task := range tasks {
		stepCtx := ctxlog.With(ctx, "step", task.StepID)
		stepLogger := ctxlog.FromContext(stepCtx)

		attrs := []any{"position", i + 1, "of", len(tasks), "command", task.Operation.String()}
		if task.Description != "" {
			attrs = append(attrs, "description", task.Description)
		}
		stepLogger.Info("▶️ Running step", attrs...)
		stepStart := time.Now()

		if err := e.engine.Run(stepCtx, task.Operation, e.env); err != nil {
			stepLogger.Error("❌ Step failed", "error", err, "skipped", len(tasks)-i-1)
			return fmt.Errorf("step %s failed: %w", task.StepID, err)
		}

		stepLogger.Info("✅ Step finished", "duration", time.Since(stepStart))
	}

	logger.Debug("All steps finished.", "count", len(tasks), "duration", time.Since(start))
	return nil
}
