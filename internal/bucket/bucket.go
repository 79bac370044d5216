// Package bucket derives canonical YYYY-MM month keys from timestamps.
// Every aggregation in the system groups records by these keys.
package bucket

import "time"

// step is the fixed interval used when walking backward through months.
// This is a deliberate approximation of a calendar month: near month
// boundaries of unequal length the produced keys may repeat or skip.
const step = 30 * 24 * time.Hour

// Of returns the month key for a timestamp, formatted as a 4-digit year,
// a hyphen, and a 2-digit zero-padded month (e.g. "2024-03").
func Of(t time.Time) string {
	return t.Format("2006-01")
}

// Current returns the month key for the present moment.
func Current() string {
	return Of(time.Now())
}

// WalkBack returns n month keys walking backward from anchor in fixed
// 30-day steps, ordered oldest first. The anchor's own key is last.
func WalkBack(anchor time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[n-1-i] = Of(anchor.Add(-time.Duration(i) * step))
	}
	return keys
}
