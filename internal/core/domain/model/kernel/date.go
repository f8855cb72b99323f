package kernel

import "time"

// DateOnly truncates a timestamp to its calendar date in UTC.
// Allocations and capacity snapshots are keyed by calendar date, so every
// comparison goes through this normalization to avoid time-of-day mismatches.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two timestamps fall on the same calendar date (UTC).
func SameDate(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
