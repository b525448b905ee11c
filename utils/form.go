package utils

import (
	"strconv"
	"strings"
	"time"
)

// Form fields are coerced, never rejected: a malformed or negative numeric
// field falls back to zero. The second return value reports whether the
// default was taken, so coercion stays testable away from the web layer.

func ParseIntField(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0, true
	}
	return v, false
}

func ParseFloatField(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0, true
	}
	return v, false
}

// ParseDateField parses a YYYY-MM-DD form value into local midnight of that
// day, falling back to today when the field is empty or malformed.
func ParseDateField(raw string, now time.Time) (time.Time, bool) {
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), time.Local)
	if err != nil {
		return DayStart(now), true
	}
	return DayStart(parsed), false
}

// DayStart truncates a time to midnight in the server's local time zone.
func DayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}
