// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Pipeline is the ordered list of steps plus the locals they may reference.
type Pipeline struct {
	Steps  []*Step
	Locals map[string]cty.Value
}

// NewPipeline creates and returns an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Steps:  []*Step{},
		Locals: map[string]cty.Value{},
	}
}

// hclPipelineFile is the top-level structure of a pipeline file.
type hclPipelineFile struct {
	Locals []*hclLocalsBlock `hcl:"locals,block"`
	Steps  []*hclStep        `hcl:"step,block"`
}

// EvalContext returns the context used to evaluate step expressions.
func (p *Pipeline) EvalContext() *hcl.EvalContext {
	locals := cty.EmptyObjectVal
	if len(p.Locals) > 0 {
		locals = cty.ObjectVal(p.Locals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": locals},
	}
}

// Step looks a step up by name.
func (p *Pipeline) Step(name string) (*Step, bool) {
	for _, s := range p.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

func (p *Pipeline) addFile(file *hcl.File, filePath string) error {
	var parsed hclPipelineFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode pipeline file %s: %w", filePath, diags)
	}

	for _, block := range parsed.Locals {
		if err := addLocals(p.Locals, block, filePath); err != nil {
			return err
		}
	}

	for _, parsedStep := range parsed.Steps {
		step, diags := newStepFromHCL(parsedStep, filePath)
		if diags.HasErrors() {
			return fmt.Errorf("error parsing step in file %s: %w", filePath, diags)
		}
		if prev, exists := p.Step(step.Name); exists {
			return fmt.Errorf("step name %q in %s is already used by %s in %s",
				step.Name, filePath, prev.ID(), prev.FSInformation.FilePath)
		}
		p.Steps = append(p.Steps, step)
	}
	return nil
}

// ParsePipeline parses a single pipeline held in memory. filename is used in
// diagnostics only.
func ParsePipeline(src []byte, filename string) (*Pipeline, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse pipeline %s: %w", filename, diags)
	}

	p := NewPipeline()
	if err := p.addFile(file, filename); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadPipeline parses a pipeline from a single file, whatever its extension,
// or from every .hcl file below a directory.
func LoadPipeline(ctx context.Context, path string) (*Pipeline, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading pipeline from path", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to find pipeline files in %s: %w", path, err)
	}

	var files []string
	switch {
	case info.IsDir():
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find pipeline files in %s: %w", path, err)
		}
	case info.Mode().IsRegular():
		files = []string{path}
	default:
		return nil, fmt.Errorf("pipeline path %s is neither a file nor a directory", path)
	}

	p := NewPipeline()
	if len(files) == 0 {
		logger.Warn("No .hcl pipeline files found in path, returning empty pipeline", "path", path)
		return p, nil
	}

	parser := hclparse.NewParser()
	for _, filePath := range files {
		file, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}
		if err := p.addFile(file, filePath); err != nil {
			return nil, err
		}
	}

	logger.Debug("Pipeline loaded.", "files", len(files), "steps", len(p.Steps), "locals", len(p.Locals))
	return p, nil
}
