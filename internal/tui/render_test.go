package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/testutil"
	"github.com/charmbracelet/x/ansi"
)

func TestViewShowsZeroClock(t *testing.T) {
	m, _ := setupTestModel(t)
	view := ansi.Strip(m.View())
	for _, want := range []string{"00:00.00", "Ready", "No laps yet.", "[space] Start"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewListsLapsMostRecentFirst(t *testing.T) {
	m, clock := setupTestModel(t)
	m, _ = update(t, m, spaceKey())
	m = tickAfter(t, m, clock, 50*time.Millisecond)
	m, _ = update(t, m, keyRunes("l"))
	m = tickAfter(t, m, clock, 30*time.Millisecond)
	m, _ = update(t, m, keyRunes("l"))

	view := ansi.Strip(m.View())
	second := strings.Index(view, "Lap 2 ")
	first := strings.Index(view, "Lap 1 ")
	if second < 0 || first < 0 || second > first {
		t.Fatalf("expected Lap 2 above Lap 1:\n%s", view)
	}
	if !strings.Contains(view, "00:00.03   00:00.08") {
		t.Fatalf("expected split and cumulative for lap 2:\n%s", view)
	}
	if !strings.Contains(view, "Running") || !strings.Contains(view, "[space] Pause") {
		t.Fatalf("expected running status:\n%s", view)
	}
}

func TestViewCapsLapRows(t *testing.T) {
	m, clock := setupTestModel(t)
	m, _ = update(t, m, spaceKey())
	for i := 0; i < 20; i++ {
		m = tickAfter(t, m, clock, 10*time.Millisecond)
		m, _ = update(t, m, keyRunes("l"))
	}
	m.height = 10
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "… 17 more") {
		t.Fatalf("expected overflow marker:\n%s", view)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("abcdef", 4); ansi.StringWidth(got) > 4 {
		t.Fatalf("expected width <= 4, got %q", got)
	}
	if truncateLabel("abc", 0) != "" {
		t.Fatalf("expected empty result for zero width")
	}
	if truncateLabel("abc", 10) != "abc" {
		t.Fatalf("expected short text unchanged")
	}
}

func TestViewHistory(t *testing.T) {
	m, _ := setupTestModel(t)
	m.state = StateHistory
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "No saved runs.") {
		t.Fatalf("expected empty history:\n%s", view)
	}
	m.runs = []models.Run{
		testutil.NewRun().WithID(2).WithLabel("Tempo").WithSplits(time.Second).Build(),
		testutil.NewRun().WithID(1).WithLabel("Easy").Build(),
	}
	m.runCursor = 1
	view = ansi.Strip(m.View())
	if !strings.Contains(view, "Tempo") || !strings.Contains(view, "> ") || !strings.Contains(view, "Easy") {
		t.Fatalf("expected runs listed:\n%s", view)
	}
	if strings.Index(view, "> ") < strings.Index(view, "Tempo") {
		t.Fatalf("expected cursor on second run:\n%s", view)
	}
}
