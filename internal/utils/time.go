package utils

import (
	"fmt"
	"time"
)

// daysPerMonth is the fixed month length used for relative windows
const daysPerMonth = 30

// ParseError is returned when a provider timestamp cannot be parsed
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid timestamp %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MonthsAgo returns now minus n 30-day months. No calendar arithmetic is applied.
func MonthsAgo(now time.Time, n int) time.Time {
	return now.AddDate(0, 0, -daysPerMonth*n)
}

// DaysAgo returns now minus n days formatted for a provider "since" filter
func DaysAgo(now time.Time, n int) string {
	return now.AddDate(0, 0, -n).UTC().Format(time.RFC3339)
}

// ParseTimestamp parses an ISO-8601 provider timestamp ("2024-01-02T03:04:05Z" or with a numeric offset)
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &ParseError{Value: s, Err: fmt.Errorf("empty value")}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &ParseError{Value: s, Err: err}
	}
	return t.UTC(), nil
}

// WeekStart returns Monday 00:00 UTC of the week containing t
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
