package grass

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/specialistvlad/grasschain/internal/ctxlog"
	"github.com/specialistvlad/grasschain/internal/environ"
)

// Call is one invocation seen by a Recorder.
type Call struct {
	Operation *Operation
	Env       environ.Env
}

// Recorder is an Engine that records calls instead of running them.
type Recorder struct {
	// Out, if set, receives one command line per call.
	Out io.Writer
	// FailOn makes calls to the named modules return the given error after
	// they are recorded.
	FailOn map[string]error

	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates a Recorder that prints command lines to out.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{Out: out}
}

// Run records op and env.
func (r *Recorder) Run(ctx context.Context, op *Operation, env environ.Env) error {
	if err := op.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.calls = append(r.calls, Call{Operation: op.Clone(), Env: env.Clone()})
	failErr := r.FailOn[op.Module]
	r.mu.Unlock()

	ctxlog.FromContext(ctx).Debug("Recorded GRASS module call.", "command", op.String())
	if r.Out != nil {
		fmt.Fprintln(r.Out, op.String())
	}
	return failErr
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Modules returns the module names of the recorded calls in order.
func (r *Recorder) Modules() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.Operation.Module)
	}
	return out
}
