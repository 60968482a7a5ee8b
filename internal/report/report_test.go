package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/stopwatch"
	"github.com/akyairhashvil/lapwatch/internal/testutil"
)

func TestFromSession(t *testing.T) {
	s := stopwatch.New()
	s.Toggle()
	for i := 0; i < 5; i++ {
		s.Tick(10 * time.Millisecond)
	}
	s.Lap()
	for i := 0; i < 3; i++ {
		s.Tick(10 * time.Millisecond)
	}
	s.Lap()

	run := FromSession("Track", s)
	if run.Saved() {
		t.Fatalf("expected unsaved run")
	}
	if run.Label != "Track" || run.Elapsed != 80*time.Millisecond {
		t.Fatalf("unexpected run: %+v", run)
	}
	if len(run.Laps) != 2 || run.Laps[0].Number != 2 || run.Laps[0].Split != 30*time.Millisecond {
		t.Fatalf("expected laps most recent first, got %+v", run.Laps)
	}
}

func TestStats(t *testing.T) {
	run := testutil.NewRun().WithSplits(40*time.Millisecond, 20*time.Millisecond, 60*time.Millisecond).Build()
	st := Stats(run)
	if st.Fastest.Number != 2 || st.Slowest.Number != 3 || st.Mean != 40*time.Millisecond {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestWritePDF(t *testing.T) {
	run := testutil.NewRun().WithLabel("Intervals").WithSplits(time.Second, 2*time.Second).Build()
	var buf bytes.Buffer
	if err := WritePDF(&buf, run); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF header")
	}
}

func TestWritePDFWithoutLaps(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, models.Run{Elapsed: time.Second}); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output")
	}
}

func TestExportPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	run := testutil.NewRun().WithLabel("Morning Run").WithSplits(time.Second).Build()
	path, err := ExportPDF(dir, run)
	if err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path, got %s", path)
	}
	if !strings.Contains(filepath.Base(path), "morning-run") {
		t.Fatalf("expected slug in file name, got %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat report: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty report")
	}
}

func TestFileNameFallsBackToRun(t *testing.T) {
	name := FileName(models.Run{SavedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)})
	if name != "lapwatch_run_20240301-093000.pdf" {
		t.Fatalf("unexpected file name: %s", name)
	}
}

func TestExportPDFKeepsEarlierReport(t *testing.T) {
	dir := t.TempDir()
	run := testutil.NewRun().WithLabel("Tempo").WithSplits(time.Second).Build()
	first, err := ExportPDF(dir, run)
	if err != nil {
		t.Fatalf("first ExportPDF failed: %v", err)
	}
	second, err := ExportPDF(dir, run)
	if err != nil {
		t.Fatalf("second ExportPDF failed: %v", err)
	}
	third, err := ExportPDF(dir, run)
	if err != nil {
		t.Fatalf("third ExportPDF failed: %v", err)
	}
	if first == second || second == third || first == third {
		t.Fatalf("expected distinct paths, got %s %s %s", first, second, third)
	}
	if want := strings.TrimSuffix(FileName(run), ".pdf") + "_2.pdf"; filepath.Base(second) != want {
		t.Fatalf("expected %s, got %s", want, filepath.Base(second))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected three reports on disk, got %d", len(entries))
	}
}

func TestDetails(t *testing.T) {
	saved := testutil.NewRun().WithID(12).WithSplits(time.Second).Build()
	lines := details(saved)
	if len(lines) != 3 || lines[0] != "Run #12" || lines[2] != "Total: 00:01.00" {
		t.Fatalf("unexpected saved details: %q", lines)
	}
	lines = details(models.Run{Elapsed: 500 * time.Millisecond})
	if len(lines) != 1 || lines[0] != "Total: 00:00.50" {
		t.Fatalf("unexpected unsaved details: %q", lines)
	}
}
