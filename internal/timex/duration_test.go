package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string form", `"1h30m"`, 90 * time.Minute, false},
		{"integer nanoseconds", `3600000000000`, time.Hour, false},
		{"bad string", `"soon"`, 0, true},
		{"wrong type", `{"x":1}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration{Duration: time.Hour}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"1h0m0s"`, string(b))
}
