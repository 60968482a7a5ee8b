package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/stopwatch"
	"github.com/akyairhashvil/lapwatch/internal/testutil"
)

func TestFormatLapRow(t *testing.T) {
	row := FormatLapRow(stopwatch.Lap{Number: 2, Split: 30 * time.Millisecond, Cumulative: 80 * time.Millisecond})
	if row != "Lap 2    00:00.03   00:00.08" {
		t.Fatalf("unexpected row: %q", row)
	}
}

func TestFormatLapCount(t *testing.T) {
	if FormatLapCount(0) != "no laps" || FormatLapCount(1) != "1 lap" || FormatLapCount(12) != "12 laps" {
		t.Fatalf("unexpected lap counts")
	}
}

func TestFormatRunRow(t *testing.T) {
	run := testutil.NewRun().WithLabel("Tempo").WithSplits(time.Minute, 61230*time.Millisecond).Build()
	row := FormatRunRow(run)
	if !strings.Contains(row, "02:01.23") || !strings.Contains(row, "2 laps") || !strings.HasSuffix(row, "Tempo") {
		t.Fatalf("unexpected row: %q", row)
	}
}

func TestFormatStatus(t *testing.T) {
	if FormatStatus(true, 0) != "Running" || FormatStatus(false, 10) != "Paused" || FormatStatus(false, 0) != "Ready" {
		t.Fatalf("unexpected status labels")
	}
}
