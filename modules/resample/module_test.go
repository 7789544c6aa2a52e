package resample

import (
	"context"
	"testing"

	"github.com/specialistvlad/grasschain/internal/registry"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestOnRunResample(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		want    string
		wantErr string
	}{
		{
			name:  "defaults",
			input: Input{Input: "elev_lid792_1m", Output: "elev_resampled"},
			want:  "r.resamp.stats input=elev_lid792_1m output=elev_resampled",
		},
		{
			name:  "quantile with flags",
			input: Input{Input: "elev", Output: "elev_q", Method: "quantile", Quantile: ptr(0.9), Flags: "w"},
			want:  "r.resamp.stats -w input=elev output=elev_q method=quantile quantile=0.9",
		},
		{
			name:    "missing output",
			input:   Input{Input: "elev"},
			wantErr: "needs both input and output",
		},
		{
			name:    "output equals input",
			input:   Input{Input: "elev", Output: "elev"},
			wantErr: "would overwrite the input raster",
		},
		{
			name:    "unknown method",
			input:   Input{Input: "elev", Output: "out", Method: "mean"},
			wantErr: `unknown method "mean"`,
		},
		{
			name:    "quantile without method",
			input:   Input{Input: "elev", Output: "out", Quantile: ptr(0.5)},
			wantErr: "only valid with method",
		},
		{
			name:    "quantile out of range",
			input:   Input{Input: "elev", Output: "out", Method: "quantile", Quantile: ptr(1.5)},
			wantErr: "quantile must be within [0, 1], got 1.5",
		},
		{
			name:    "unknown flag",
			input:   Input{Input: "elev", Output: "out", Flags: "a"},
			wantErr: "unsupported r.resamp.stats flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := OnRunResample(context.Background(), &tt.input)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, op.String())
		})
	}
}

func TestModule_Register(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)

	h, ok := reg.Handler(Operation)
	require.True(t, ok)
	require.IsType(t, &Input{}, h.NewInput())
}
