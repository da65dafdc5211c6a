package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"valid", `"2026-08-31 14:30"`, time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC), false},
		{"null", `null`, time.Time{}, false},
		{"empty string", `""`, time.Time{}, false},
		{"bad layout", `"31.08.2026"`, time.Time{}, true},
		{"not a string", `42`, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, ts.Equal(tt.want), "got %v, want %v", ts.Time, tt.want)
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	now := Now()

	data, err := json.Marshal(now)
	require.NoError(t, err)

	// The layout carries no zone, so compare the rendered form.
	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, now.Format(timestampLayout), back.Format(timestampLayout))
}
