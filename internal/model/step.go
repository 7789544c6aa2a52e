// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
)

// Step is one GRASS module invocation declared in a pipeline.
type Step struct {
	// Operation is the GRASS module name, e.g. "g.region".
	Operation     string
	Name          string
	Description   string
	FSInformation *FSInfo

	// Enabled is evaluated at plan time; nil means enabled.
	Enabled hcl.Expression
	// Arguments is the raw `arguments` block body. It is an empty body when
	// the step has no arguments block.
	Arguments hcl.Body
}

// ID returns "<module>.<name>", used in logs and errors.
func (s *Step) ID() string {
	return s.Operation + "." + s.Name
}

// IsEnabled evaluates the step's `enabled` attribute.
func (s *Step) IsEnabled(evalCtx *hcl.EvalContext) (bool, error) {
	if s.Enabled == nil {
		return true, nil
	}
	var enabled bool
	if diags := gohcl.DecodeExpression(s.Enabled, evalCtx, &enabled); diags.HasErrors() {
		return false, fmt.Errorf("step %s: invalid enabled: %w", s.ID(), diags)
	}
	return enabled, nil
}

// hclStep is a `step` block as first decoded from a file.
type hclStep struct {
	Operation string   `hcl:"operation,label"`
	Name      string   `hcl:"name,label"`
	Body      hcl.Body `hcl:",remain"`
}

var stepBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "enabled"},
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "arguments"},
	},
}

// newStepFromHCL builds a Step from a decoded step block.
func newStepFromHCL(parsed *hclStep, filePath string) (*Step, hcl.Diagnostics) {
	step := &Step{
		Operation:     parsed.Operation,
		Name:          parsed.Name,
		FSInformation: NewFSInfo(filePath),
		Arguments:     hcl.EmptyBody(),
	}

	content, diags := parsed.Body.Content(stepBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}

	if attr, ok := content.Attributes["enabled"]; ok {
		step.Enabled = attr.Expr
	}
	if attr, ok := content.Attributes["description"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &step.Description)...)
	}

	argBlock, blockDiags := findUniqueBlock(content.Blocks, "arguments")
	diags = append(diags, blockDiags...)
	if argBlock != nil {
		step.Arguments = argBlock.Body
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return step, diags
}

// findUniqueBlock returns the block of the given type, or nil. More than one
// such block is an error.
func findUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != name {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate \"" + name + "\" block",
				Detail:   "Only one \"" + name + "\" block is allowed.",
				Subject:  &block.DefRange,
			})
			continue
		}
		found = block
	}
	return found, diags
}
