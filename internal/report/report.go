// Package report renders runs as printable lap sheets.
package report

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/stopwatch"
	"github.com/akyairhashvil/lapwatch/internal/util"
	"github.com/go-pdf/fpdf"
)

const maxReportCopies = 1000

// FromSession snapshots the live session as an unsaved run.
func FromSession(label string, s *stopwatch.Session) models.Run {
	laps := s.Laps()
	run := models.Run{
		Label:   label,
		Elapsed: s.Elapsed(),
		SavedAt: time.Now(),
		Laps:    make([]models.RunLap, 0, len(laps)),
	}
	for _, lap := range laps {
		run.Laps = append(run.Laps, models.RunLap{Number: lap.Number, Split: lap.Split, Cumulative: lap.Cumulative})
	}
	return run
}

// Stats summarises the splits of a run.
func Stats(run models.Run) stopwatch.Stats {
	laps := make([]stopwatch.Lap, 0, len(run.Laps))
	for _, lap := range run.Laps {
		laps = append(laps, stopwatch.Lap{Number: lap.Number, Split: lap.Split, Cumulative: lap.Cumulative})
	}
	return stopwatch.Summarize(laps)
}

// WritePDF writes an A4 lap sheet for run to w.
func WritePDF(w io.Writer, run models.Run) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(title(run)), false)
	pdf.SetCreator(config.AppName, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(title(run)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	for _, line := range details(run) {
		pdf.Cell(0, 8, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	if len(run.Laps) == 0 {
		pdf.Cell(0, 8, "No laps recorded.")
		pdf.Ln(8)
		return pdf.Output(w)
	}

	st := Stats(run)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(30, 8, "Lap", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, "Split", "B", 0, "R", false, 0, "")
	pdf.CellFormat(50, 8, "Cumulative", "B", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for i := len(run.Laps) - 1; i >= 0; i-- {
		lap := run.Laps[i]
		mark := ""
		if st.Count > 1 {
			switch lap.Number {
			case st.Fastest.Number:
				mark = " (fastest)"
			case st.Slowest.Number:
				mark = " (slowest)"
			}
		}
		pdf.CellFormat(30, 7, fmt.Sprintf("Lap %d", lap.Number), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, stopwatch.Format(lap.Split), "", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, stopwatch.Format(lap.Cumulative), "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 7, mark, "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Fastest: Lap %d  %s", st.Fastest.Number, stopwatch.Format(st.Fastest.Split)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Slowest: Lap %d  %s", st.Slowest.Number, stopwatch.Format(st.Slowest.Split)))
	pdf.Ln(7)
	pdf.Cell(0, 8, "Average: "+stopwatch.Format(st.Mean))
	return pdf.Output(w)
}

// details are the header lines printed under the title.
func details(run models.Run) []string {
	var lines []string
	if run.Saved() {
		lines = append(lines, fmt.Sprintf("Run #%d", run.ID))
	}
	if !run.SavedAt.IsZero() {
		lines = append(lines, "Recorded: "+run.SavedAt.Local().Format("2006-01-02 15:04"))
	}
	return append(lines, "Total: "+stopwatch.Format(run.Elapsed))
}

// ExportPDF writes the lap sheet into dir and returns its absolute path.
// An existing report is never replaced; a numbered name is used instead.
func ExportPDF(dir string, run models.Run) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	f, path, err := createUnique(dir, FileName(run))
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	if err := WritePDF(f, run); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// createUnique opens name in dir for writing, adding _2, _3 and so on before
// the extension while the name is taken.
func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 1; n <= maxReportCopies; n++ {
		candidate := name
		if n > 1 {
			candidate = fmt.Sprintf("%s_%d%s", base, n, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("%s: %d copies already exist", name, maxReportCopies)
}

// FileName is the report file name for run.
func FileName(run models.Run) string {
	slug := util.Slug(run.Label)
	if slug == "" {
		slug = "run"
	}
	stamp := run.SavedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	return fmt.Sprintf("%s_%s_%s.pdf", config.AppName, slug, stamp.Local().Format("20060102-150405"))
}

func title(run models.Run) string {
	if run.Label == "" {
		return "Lap Report"
	}
	return "Lap Report: " + run.Label
}
