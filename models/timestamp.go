package models

import (
	"bytes"
	"fmt"
	"time"
)

// LegacyTimeLayout is the layout of timestamps in user databases written by
// the legacy backend. Those values carry no zone and are read as local
// time.
const LegacyTimeLayout = time.DateTime

// Timestamp is a time.Time that also decodes [LegacyTimeLayout]. It encodes
// as RFC 3339 and its IsZero keeps omitzero working.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return t.Time.MarshalJSON()
}

// UnmarshalJSON accepts RFC 3339, [LegacyTimeLayout], an empty string and
// null. The last two leave the zero time.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", b)
	}

	s := string(b[1 : len(b)-1])
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(LegacyTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("timestamp %q is neither RFC 3339 nor %q", s, LegacyTimeLayout)
	}
	t.Time = parsed
	return nil
}
