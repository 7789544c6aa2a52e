// Package resample provides the r.resamp.stats handler, which resamples a
// raster to the current region using an aggregate statistic.
package resample

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/grass"
	"github.com/specialistvlad/grasschain/internal/registry"
)

// Operation is the GRASS module this package handles.
const Operation = "r.resamp.stats"

// Methods are the aggregates r.resamp.stats understands.
var Methods = []string{
	"average", "median", "mode", "minimum", "maximum", "range",
	"quart1", "quart3", "perc90", "sum", "variance", "stddev",
	"quantile", "count", "diversity",
}

const allowedFlags = "nw"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for an r.resamp.stats step.
type Input struct {
	Input    string   `hcl:"input"`
	Output   string   `hcl:"output"`
	Method   string   `hcl:"method,optional"`
	Quantile *float64 `hcl:"quantile,optional"`
	Flags    string   `hcl:"flags,optional"`
}

// OnRunResample builds the r.resamp.stats operation for a step.
func OnRunResample(ctx context.Context, input *Input) (*grass.Operation, error) {
	if input.Input == "" || input.Output == "" {
		return nil, errors.New("r.resamp.stats needs both input and output")
	}
	if input.Input == input.Output {
		return nil, fmt.Errorf("output %q would overwrite the input raster", input.Output)
	}
	if input.Method != "" && !slices.Contains(Methods, input.Method) {
		return nil, fmt.Errorf("unknown method %q, expected one of %s", input.Method, strings.Join(Methods, ", "))
	}
	if input.Quantile != nil {
		if input.Method != "quantile" {
			return nil, errors.New(`quantile is only valid with method = "quantile"`)
		}
		if q := *input.Quantile; q < 0 || q > 1 {
			return nil, fmt.Errorf("quantile must be within [0, 1], got %s", grass.FormatNumber(q))
		}
	}
	for _, f := range input.Flags {
		if !strings.ContainsRune(allowedFlags, f) {
			return nil, fmt.Errorf("unsupported r.resamp.stats flag %q", f)
		}
	}

	op := grass.NewOperation(Operation).
		Set("input", input.Input).
		Set("output", input.Output).
		Set("method", input.Method).
		Flag(input.Flags)
	if input.Quantile != nil {
		op.SetFloat("quantile", *input.Quantile)
	}

	ctxlog.FromContext(ctx).Debug("Built resample operation.", "command", op.String())
	return op, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	registry.Register(r, Operation, OnRunResample)
}
