package tui

import (
	"fmt"

	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/stopwatch"
)

// FormatLapRow formats a lap for the lap list: number, split, cumulative.
func FormatLapRow(lap stopwatch.Lap) string {
	return fmt.Sprintf("Lap %-4d %s   %s", lap.Number, stopwatch.Format(lap.Split), stopwatch.Format(lap.Cumulative))
}

// FormatLapCount formats lap counts for display.
func FormatLapCount(n int) string {
	switch n {
	case 0:
		return "no laps"
	case 1:
		return "1 lap"
	default:
		return fmt.Sprintf("%d laps", n)
	}
}

// FormatRunRow formats a saved run for the history list.
func FormatRunRow(run models.Run) string {
	return fmt.Sprintf("%s  %s  %-8s %s",
		run.SavedAt.Local().Format("2006-01-02 15:04"),
		stopwatch.Format(run.Elapsed),
		FormatLapCount(len(run.Laps)),
		run.Label)
}

// FormatStatus returns the human-readable session state.
func FormatStatus(running bool, elapsed int64) string {
	switch {
	case running:
		return "Running"
	case elapsed > 0:
		return "Paused"
	default:
		return "Ready"
	}
}
