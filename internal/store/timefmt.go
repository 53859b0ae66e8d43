package store

import (
	"fmt"
	"time"
)

// TimeLayout matches SQLite's datetime('now') output.
const TimeLayout = "2006-01-02 15:04:05"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a stored timestamp. RFC 3339 values are accepted as well,
// since older databases stored session expiry that way.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(TimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
