// Package region provides the g.region handler, which sets the computational
// region used by subsequent raster operations.
package region

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/grass"
	"github.com/specialistvlad/grasschain/internal/registry"
)

// Operation is the GRASS module this package handles.
const Operation = "g.region"

const allowedFlags = "dspglcefb3au"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for a g.region step.
type Input struct {
	Raster string   `hcl:"raster,optional"`
	Vector string   `hcl:"vector,optional"`
	Res    *float64 `hcl:"res,optional"`
	Align  string   `hcl:"align,optional"`
	Flags  string   `hcl:"flags,optional"`
}

// OnRunRegion builds the g.region operation for a step.
func OnRunRegion(ctx context.Context, input *Input) (*grass.Operation, error) {
	if input.Raster == "" && input.Vector == "" && input.Res == nil && input.Align == "" {
		return nil, errors.New("g.region needs at least one of raster, vector, res or align")
	}
	if input.Res != nil && *input.Res <= 0 {
		return nil, fmt.Errorf("res must be positive, got %s", grass.FormatNumber(*input.Res))
	}
	for _, f := range input.Flags {
		if !strings.ContainsRune(allowedFlags, f) {
			return nil, fmt.Errorf("unsupported g.region flag %q", f)
		}
	}

	op := grass.NewOperation(Operation).
		Set("raster", input.Raster).
		Set("vector", input.Vector).
		Set("align", input.Align).
		Flag(input.Flags)
	if input.Res != nil {
		op.SetFloat("res", *input.Res)
	}

	ctxlog.FromContext(ctx).Debug("Built region operation.", "command", op.String())
	return op, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	registry.Register(r, Operation, OnRunRegion)
}
