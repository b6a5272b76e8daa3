package util

import (
	"fmt"
	"time"
)

// FormatElapsed renders a duration in the largest unit that keeps it readable:
// microseconds below 1ms, milliseconds below 1s, seconds below 1min and
// minutes otherwise, always with two decimal digits.
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.2f µs", float64(d)/float64(time.Microsecond))
	case d < time.Second:
		return fmt.Sprintf("%.2f ms", float64(d)/float64(time.Millisecond))
	case d < time.Minute:
		return fmt.Sprintf("%.2f s", d.Seconds())
	default:
		return fmt.Sprintf("%.2f min", d.Minutes())
	}
}

// Truncate shortens s to keep runes followed by "..." when it is longer than
// limit runes. Shorter strings are returned unchanged.
func Truncate(s string, limit, keep int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if keep > len(r) {
		keep = len(r)
	}
	return string(r[:keep]) + "..."
}
