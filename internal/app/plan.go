package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/executor"
	"github.com/specialistvlad/grasschain/internal/model"
)

// Plan turns every enabled step into a task. All steps are checked, and all
// problems are reported together, before anything is executed.
func (a *App) Plan(ctx context.Context) ([]executor.Task, error) {
	logger := ctxlog.FromContext(ctx)
	evalCtx := a.pipeline.EvalContext()

	var (
		tasks []executor.Task
		errs  []error
	)
	for _, step := range a.pipeline.Steps {
		enabled, err := step.IsEnabled(evalCtx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !enabled {
			logger.Info("Step disabled, skipping.", "step", step.ID())
			continue
		}

		task, err := a.planStep(ctx, step)
		if err != nil {
			errs = append(errs, fmt.Errorf("step %s (%s): %w", step.ID(), step.FSInformation.FilePath, err))
			continue
		}
		tasks = append(tasks, task)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	logger.Debug("Pipeline planned.", "tasks", len(tasks))
	return tasks, nil
}

func (a *App) planStep(ctx context.Context, step *model.Step) (executor.Task, error) {
	handler, ok := a.registry.Handler(step.Operation)
	if !ok {
		return executor.Task{}, fmt.Errorf("unsupported GRASS module %q, supported: %v", step.Operation, a.registry.Operations())
	}

	input := handler.NewInput()
	if diags := gohcl.DecodeBody(step.Arguments, a.pipeline.EvalContext(), input); diags.HasErrors() {
		return executor.Task{}, fmt.Errorf("invalid arguments: %w", diags)
	}

	op, err := handler.Build(ctx, input)
	if err != nil {
		return executor.Task{}, err
	}
	return executor.Task{StepID: step.ID(), Description: step.Description, Operation: op}, nil
}
