// Package buffer provides the v.buffer handler, which creates buffer polygons
// around vector features at a fixed distance.
package buffer

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
const Operation = "v.buffer"

// FeatureTypes are the values accepted in `type`.
var FeatureTypes = []string{"point", "line", "boundary", "centroid", "area"}

const allowedFlags = "stc"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for a v.buffer step. Type is a comma separated
// list, e.g. "point" or "point,line".
type Input struct {
	Input    string  `hcl:"input"`
	Output   string  `hcl:"output"`
	Distance float64 `hcl:"distance"`
	Type     string  `hcl:"type,optional"`
	Layer    string  `hcl:"layer,optional"`
	Flags    string  `hcl:"flags,optional"`
}

// OnRunBuffer builds the v.buffer operation for a step.
func OnRunBuffer(ctx context.Context, input *Input) (*grass.Operation, error) {
	if input.Input == "" || input.Output == "" {
		return nil, errors.New("v.buffer needs both input and output")
	}
	if input.Distance == 0 {
		return nil, errors.New("distance must not be zero")
	}
	if input.Type != "" {
		for _, t := range strings.Split(input.Type, ",") {
			if !slices.Contains(FeatureTypes, strings.TrimSpace(t)) {
				return nil, fmt.Errorf("unknown feature type %q, expected one of %s", t, strings.Join(FeatureTypes, ", "))
			}
		}
	}
	for _, f := range input.Flags {
		if !strings.ContainsRune(allowedFlags, f) {
			return nil, fmt.Errorf("unsupported v.buffer flag %q", f)
		}
	}

	op := grass.NewOperation(Operation).
		Set("input", input.Input).
		Set("output", input.Output).
		Set("type", strings.ReplaceAll(input.Type, " ", "")).
		Set("layer", input.Layer).
		SetFloat("distance", input.Distance).
		Flag(input.Flags)

	ctxlog.FromContext(ctx).Debug("Built buffer operation.", "command", op.String())
	return op, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	registry.Register(r, Operation, OnRunBuffer)
}
