package stopwatch

import (
	"fmt"
	"time"
)

// Format renders d as MM:SS.CC. Minutes are not capped, so long runs widen
// the minutes field. Negative durations render as zero.
func Format(d time.Duration) string {
	return FormatMillis(d.Milliseconds())
}

// FormatMillis is Format for a millisecond count.
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}
