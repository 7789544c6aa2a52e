package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/grasschain/internal/grass"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Handler holds the Go side of one GRASS module.
type Handler struct {
	// NewInput returns a pointer to a fresh input struct for gohcl decoding.
	NewInput func() any
	// Build validates a decoded input and returns the operation to run.
	Build func(ctx context.Context, input any) (*grass.Operation, error)
}

// Registry holds the handlers registered for a single application instance.
type Registry struct {
	handlers map[string]*Handler
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]*Handler),
	}
}

// RegisterHandler registers the handler for a GRASS module. Registering the
// same module twice is a programming error and panics.
func (r *Registry) RegisterHandler(operation string, handler *Handler) {
	if _, exists := r.handlers[operation]; exists {
		panic(fmt.Sprintf("handler for operation '%s' already registered", operation))
	}
	slog.Debug("Registering operation handler.", "operation", operation)
	r.handlers[operation] = handler
}

// Handler returns the handler for a GRASS module.
func (r *Registry) Handler(operation string) (*Handler, bool) {
	h, ok := r.handlers[operation]
	return h, ok
}

// Operations lists the registered module names in sorted order.
func (r *Registry) Operations() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a handler whose input type is T.
func Register[T any](r *Registry, operation string, build func(ctx context.Context, input *T) (*grass.Operation, error)) {
	r.RegisterHandler(operation, &Handler{
		NewInput: func() any { return new(T) },
		Build: func(ctx context.Context, input any) (*grass.Operation, error) {
			typed, ok := input.(*T)
			if !ok {
				return nil, fmt.Errorf("operation %s: unexpected input type %T", operation, input)
			}
			return build(ctx, typed)
		},
	})
}
