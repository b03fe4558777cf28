package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{name: "legacy layout", raw: `"2020-05-01 12:00:03"`, want: time.Date(2020, 5, 1, 12, 0, 3, 0, time.Local)},
		{name: "rfc3339", raw: `"2026-10-17T08:30:00Z"`, want: time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)},
		{name: "rfc3339 with offset", raw: `"2026-10-17T10:30:00+02:00"`, want: time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)},
		{name: "empty string", raw: `""`},
		{name: "null", raw: `null`},
		{name: "garbage", raw: `"yesterday"`, wantErr: true},
		{name: "number", raw: `1588334400`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.raw), &ts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
			assert.Equal(t, tt.want.IsZero(), ts.IsZero())
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(NewTimestamp(time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-17T08:30:00Z"`, string(out))

	var back Timestamp
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Equal(time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)))
}
