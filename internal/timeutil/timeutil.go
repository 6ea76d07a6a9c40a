// Package timeutil provides relative time formatting for message timestamps.
//
// The formatter coarsens the gap between two instants to the single largest
// unit that fits, the way the message board shows message ages:
//
//	FormatRelative(now.Add(-90*time.Second), now) // "1 minute"
//	FormatRelative(now.Add(-3*24*time.Hour), now) // "3 days"
//
// "Now" is always passed in by the caller so the result depends only on the
// arguments.
package timeutil

import (
	"strconv"
	"time"
)

const millisPerSecond = 1000

// bucket is one unit of the relative time scale with its length in seconds.
type bucket struct {
	unit   string
	factor int64
}

// buckets is ordered from the largest unit to the smallest. The last entry is
// the fallback and must have a factor of 1.
var buckets = []bucket{
	{unit: "year", factor: 31536000},
	{unit: "month", factor: 2592000},
	{unit: "day", factor: 86400},
	{unit: "hour", factor: 3600},
	{unit: "minute", factor: 60},
	{unit: "second", factor: 1},
}

// FormatRelative describes how long before now the instant then occurred,
// using the largest unit with a whole count of at least one.
//
// Examples:
//   - 0 seconds for then == now
//   - 1 second, 59 seconds
//   - 1 minute for 90 seconds
//   - 2 years for any gap between 730 and 1094 days
//
// Instants after now are not special-cased: the elapsed seconds are negative,
// no bucket qualifies, and the raw second count is returned ("-5 seconds",
// but "-1 second").
func FormatRelative(then, now time.Time) string {
	elapsed := floorDiv(now.UnixMilli()-then.UnixMilli(), millisPerSecond)

	selected := buckets[len(buckets)-1]
	interval := elapsed
	for _, b := range buckets[:len(buckets)-1] {
		if n := floorDiv(elapsed, b.factor); n >= 1 {
			selected, interval = b, n
			break
		}
	}

	unit := selected.unit
	if interval > 1 || interval == 0 {
		unit += "s"
	}
	return strconv.FormatInt(interval, 10) + " " + unit
}

// Since coerces v with [ToTime] and formats it relative to now.
func Since(v any, now time.Time) (string, error) {
	then, err := ToTime(v)
	if err != nil {
		return "", err
	}
	return FormatRelative(then, now), nil
}

// floorDiv divides a by b rounding toward negative infinity. b must be positive.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
