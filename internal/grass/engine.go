package grass

import (
	"context"

	"github.com/specialistvlad/grasschain/internal/environ"
)

// Engine runs GRASS operations. Run blocks until the module has finished and
// returns an error if it failed; it never retries.
type Engine interface {
	Run(ctx context.Context, op *Operation, env environ.Env) error
}
