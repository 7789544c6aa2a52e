// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// hclLocalsBlock is a `locals` block. Its attributes are evaluated without
// any variables in scope, so only literal values are accepted.
type hclLocalsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// addLocals evaluates the attributes of a locals block into dst.
func addLocals(dst map[string]cty.Value, block *hclLocalsBlock, filePath string) error {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("invalid locals block in %s: %w", filePath, diags)
	}

	for name, attr := range attrs {
		if _, exists := dst[name]; exists {
			return fmt.Errorf("local %q in %s is already defined", name, filePath)
		}
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return fmt.Errorf("local %q in %s: %w", name, filePath, valDiags)
		}
		dst[name] = val
	}
	return nil
}
