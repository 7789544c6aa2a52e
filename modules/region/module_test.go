package region

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/grasschain/internal/registry"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestOnRunRegion(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		want    string
		wantErr string
	}{
		{
			name:  "raster with aligned resolution",
			input: Input{Raster: "elev_lid792_1m", Res: ptr(4), Flags: "a"},
			want:  "g.region -a raster=elev_lid792_1m res=4",
		},
		{
			name:  "vector only",
			input: Input{Vector: "firestations"},
			want:  "g.region vector=firestations",
		},
		{
			name:  "fractional resolution",
			input: Input{Res: ptr(2.5)},
			want:  "g.region res=2.5",
		},
		{
			name:    "nothing to set",
			input:   Input{Flags: "p"},
			wantErr: "needs at least one of",
		},
		{
			name:    "negative resolution",
			input:   Input{Raster: "elev", Res: ptr(-1)},
			wantErr: "res must be positive, got -1",
		},
		{
			name:    "unknown flag",
			input:   Input{Raster: "elev", Flags: "z"},
			wantErr: `unsupported g.region flag 'z'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := OnRunRegion(context.Background(), &tt.input)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, op.String())
		})
	}
}

func TestModule_DecodesArguments(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)

	h, ok := reg.Handler(Operation)
	require.True(t, ok)

	file, diags := hclparse.NewParser().ParseHCL([]byte(`
		raster = "elev_lid792_1m"
		res    = 4
		flags  = "a"
	`), "args.hcl")
	require.False(t, diags.HasErrors(), diags.Error())

	input := h.NewInput()
	diags = gohcl.DecodeBody(file.Body, nil, input)
	require.False(t, diags.HasErrors(), diags.Error())

	op, err := h.Build(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, []string{"-a", "raster=elev_lid792_1m", "res=4"}, op.Args())
}
