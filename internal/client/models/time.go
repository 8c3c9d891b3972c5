package models

import (
	"bytes"
	"fmt"
	"time"
)

// The backend serializes naive datetimes (no zone), optionally with
// microseconds. RFC 3339 is accepted as well.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const wireLayout = "2006-01-02T15:04:05.999999"

// Time is a time.Time with the backend's JSON encoding.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("time must be a JSON string, got %s", b)
	}
	s := string(b[1 : len(b)-1])
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported time format %q", s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(wireLayout) + `"`), nil
}

// DateKey returns the calendar day of t as YYYY-MM-DD.
func (t Time) DateKey() string {
	return t.Time.Format("2006-01-02")
}
