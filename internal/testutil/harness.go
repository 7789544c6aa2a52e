// Package testutil provides a harness for running grasschain pipelines in
// tests against a recording engine instead of a real GRASS installation.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/grasschain/internal/app"
	"github.com/specialistvlad/grasschain/internal/environ"
	"github.com/specialistvlad/grasschain/internal/grass"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of a pipeline run.
type HarnessResult struct {
	LogOutput string
	Stdout    string
	Err       error
	App       *app.App
	Recorder  *grass.Recorder
}

// Modules returns the GRASS modules the recorder saw, in call order.
func (r *HarnessResult) Modules() []string {
	return r.Recorder.Modules()
}

// Harness configures a pipeline run.
type Harness struct {
	// Files are written below a temporary pipeline directory. A nil map runs
	// the built-in pipeline.
	Files map[string]string
	// FailOn makes the recorder fail calls to the named modules.
	FailOn map[string]error
	// Env is the base environment; defaults to a small fixed mapping so that
	// tests do not depend on the process environment.
	Env environ.Env
}

// Run loads and runs the pipeline.
func (h Harness) Run(t *testing.T) *HarnessResult {
	t.Helper()

	cfg := &app.Config{LogLevel: "debug", LogFormat: "text"}
	if h.Files != nil {
		dir := t.TempDir()
		for name, content := range h.Files {
			path := filepath.Join(dir, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		}
		cfg.PipelinePath = dir
	}

	env := h.Env
	if env == nil {
		env = environ.Env{"HOME": "/home/grass", "GISBASE": "/usr/lib/grass"}
	}

	stdout := &SafeBuffer{}
	logs := &SafeBuffer{}
	rec := &grass.Recorder{Out: stdout, FailOn: h.FailOn}

	result := &HarnessResult{Recorder: rec}
	a, err := app.NewApp(context.Background(), stdout, logs, cfg, app.WithEngine(rec), app.WithEnviron(env))
	if err == nil {
		result.App = a
		err = a.Run(context.Background())
	}
	result.Err = err
	result.LogOutput = logs.String()
	result.Stdout = stdout.String()

	if os.Getenv("GRASSCHAIN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
	}
	return result
}

// RunPipeline runs a single pipeline file given as a string.
func RunPipeline(t *testing.T, pipelineHCL string) *HarnessResult {
	t.Helper()
	return Harness{Files: map[string]string{"main.hcl": pipelineHCL}}.Run(t)
}

// AssertStepRan checks the log output for a finished step.
func AssertStepRan(t *testing.T, result *HarnessResult, stepID string) {
	t.Helper()
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "step="+stepID) && strings.Contains(line, "Step finished") {
			return
		}
	}
	require.Failf(t, "step did not finish", "expected log output for step %q was not found", stepID)
}
