package app

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/environ"
	"github.com/specialistvlad/grasschain/internal/grass"
	"github.com/specialistvlad/grasschain/internal/model"
	"github.com/specialistvlad/grasschain/internal/registry"
)

//go:embed default.hcl
var defaultPipeline []byte

// DefaultPipelineName is the file name reported for the built-in pipeline.
const DefaultPipelineName = "<built-in>/default.hcl"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	pipeline *model.Pipeline
	engine   grass.Engine
	baseEnv  environ.Env
	modules  []registry.Module
}

// Option customises an App. Options are mostly used by tests.
type Option func(*App)

// WithEngine replaces the engine derived from the configuration.
func WithEngine(e grass.Engine) Option {
	return func(a *App) { a.engine = e }
}

// WithEnviron replaces the process environment as the base of the GRASS
// environment.
func WithEnviron(env environ.Env) Option {
	return func(a *App) { a.baseEnv = env }
}

// WithModules replaces the compiled-in module handlers.
func WithModules(modules ...registry.Module) Option {
	return func(a *App) { a.modules = modules }
}

// NewApp is the constructor for the main application. Logs go to errW;
// module output and dry-run command lines go to outW.
func NewApp(ctx context.Context, outW, errW io.Writer, cfg *Config, opts ...Option) (*App, error) {
	a := &App{
		outW:    outW,
		errW:    errW,
		config:  cfg,
		modules: coreModules,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.logger = newRunLogger(cfg, errW, uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Logger configured successfully.")

	a.registry = registry.New()
	for _, mod := range a.modules {
		mod.Register(a.registry)
	}
	a.logger.Debug("All Go modules registered.", "operations", a.registry.Operations())

	pipeline, err := a.loadPipeline(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline: %w", err)
	}
	a.pipeline = pipeline

	if a.engine == nil {
		a.engine = a.newEngine()
	}

	return a, nil
}

func (a *App) loadPipeline(ctx context.Context) (*model.Pipeline, error) {
	if a.config.PipelinePath == "" {
		a.logger.Debug("Using the built-in pipeline.")
		return model.ParsePipeline(defaultPipeline, DefaultPipelineName)
	}
	return model.LoadPipeline(ctx, a.config.PipelinePath)
}

func (a *App) newEngine() grass.Engine {
	if a.config.DryRun {
		a.logger.Info("Dry run: GRASS modules will be printed, not executed.")
		return grass.NewRecorder(a.outW)
	}
	return grass.NewCommandEngine(grass.CommandOptions{
		GrassBin: a.config.GrassBin,
		Mapset:   a.config.Mapset,
		Stdout:   a.outW,
		Stderr:   a.errW,
	})
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Pipeline returns the loaded pipeline.
func (a *App) Pipeline() *model.Pipeline {
	return a.pipeline
}

// Engine returns the engine the pipeline runs against.
func (a *App) Engine() grass.Engine {
	return a.engine
}
