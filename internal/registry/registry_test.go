package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/grasschain/internal/grass"
	"github.com/stretchr/testify/require"
)

type echoInput struct {
	Name string `hcl:"name"`
}

type echoModule struct{}

func (echoModule) Register(r *Registry) {
	Register(r, "g.echo", func(ctx context.Context, in *echoInput) (*grass.Operation, error) {
		return grass.NewOperation("g.echo").Set("name", in.Name), nil
	})
}

func TestRegister_TypedHandler(t *testing.T) {
	r := New()
	echoModule{}.Register(r)

	h, ok := r.Handler("g.echo")
	require.True(t, ok)

	input := h.NewInput()
	require.IsType(t, &echoInput{}, input)
	input.(*echoInput).Name = "x"

	op, err := h.Build(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, "g.echo name=x", op.String())
}

func TestRegister_WrongInputType(t *testing.T) {
	r := New()
	echoModule{}.Register(r)
	h, _ := r.Handler("g.echo")

	_, err := h.Build(context.Background(), &struct{}{})
	require.ErrorContains(t, err, "unexpected input type")
}

func TestRegisterHandler_DuplicatePanics(t *testing.T) {
	r := New()
	echoModule{}.Register(r)

	require.PanicsWithValue(t, "handler for operation 'g.echo' already registered", func() {
		echoModule{}.Register(r)
	})
}

func TestOperations_Sorted(t *testing.T) {
	r := New()
	r.RegisterHandler("v.buffer", &Handler{})
	r.RegisterHandler("g.region", &Handler{})

	require.Equal(t, []string{"g.region", "v.buffer"}, r.Operations())

	_, ok := r.Handler("r.slope.aspect")
	require.False(t, ok)
}
