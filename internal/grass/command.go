package grass

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/armon/circbuf"
	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/environ"
)

// stderrTailSize bounds how much module error output is kept for ModuleError.
const stderrTailSize = 4 << 10

// CommandOptions configures a CommandEngine.
type CommandOptions struct {
	// GrassBin and Mapset, when both set, wrap every module in
	// "<GrassBin> <Mapset> --exec". Otherwise modules are run from PATH and
	// must be started inside a GRASS session.
	GrassBin string
	Mapset   string
	Stdout   io.Writer
	Stderr   io.Writer
}

// CommandEngine runs GRASS modules as subprocesses.
type CommandEngine struct {
	opts    CommandOptions
	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewCommandEngine creates an engine that executes modules with os/exec.
func NewCommandEngine(opts CommandOptions) *CommandEngine {
	return &CommandEngine{opts: opts, command: exec.CommandContext}
}

// Argv returns the full command line used to run op.
func (e *CommandEngine) Argv(op *Operation) []string {
	var argv []string
	if e.opts.GrassBin != "" && e.opts.Mapset != "" {
		argv = append(argv, e.opts.GrassBin, e.opts.Mapset, "--exec")
	}
	argv = append(argv, op.Module)
	return append(argv, op.Args()...)
}

// Run executes op with exactly env as the subprocess environment.
func (e *CommandEngine) Run(ctx context.Context, op *Operation, env environ.Env) error {
	logger := ctxlog.FromContext(ctx)
	if err := op.Validate(); err != nil {
		return err
	}

	argv := e.Argv(op)
	cmd := e.command(ctx, argv[0], argv[1:]...)
	cmd.Env = env.List()
	cmd.Stdout = e.opts.Stdout

	tail, err := circbuf.NewBuffer(stderrTailSize)
	if err != nil {
		return fmt.Errorf("failed to allocate stderr buffer: %w", err)
	}
	if e.opts.Stderr != nil {
		cmd.Stderr = io.MultiWriter(e.opts.Stderr, tail)
	} else {
		cmd.Stderr = tail
	}

	logger.Debug("Invoking GRASS module.", "argv", argv)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ModuleError{Module: op.Module, Code: exitErr.ExitCode(), Stderr: tail.String()}
		}
		return fmt.Errorf("failed to start %s: %w", op.Module, err)
	}
	return nil
}
