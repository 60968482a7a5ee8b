package tui

import (
	"time"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type tickMsg struct {
	tag int
	at  time.Time
}

type runSavedMsg struct {
	id int64
}

type runsLoadedMsg struct {
	runs []models.Run
}

type runLoadedMsg struct {
	run models.Run
}

type runDeletedMsg struct {
	id int64
}

type reportExportedMsg struct {
	path string
}

type settingSavedMsg struct{}

type errMsg struct {
	op  string
	err error
}

func tickCmd(tag int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return tickMsg{tag: tag, at: t} })
}

func (m Model) saveRunCmd(run models.Run) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		id, err := repo.SaveRun(ctx, run.Label, run.Elapsed, run.Laps)
		if err != nil {
			return errMsg{op: "save run", err: err}
		}
		return runSavedMsg{id: id}
	}
}

func (m Model) loadRunsCmd() tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		runs, err := repo.GetRuns(ctx)
		if err != nil {
			return errMsg{op: "load history", err: err}
		}
		return runsLoadedMsg{runs: runs}
	}
}

func (m Model) loadRunCmd(id int64) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		run, err := repo.GetRun(ctx, id)
		if err != nil {
			return errMsg{op: "load run", err: err}
		}
		return runLoadedMsg{run: run}
	}
}

func (m Model) deleteRunCmd(id int64) tea.Cmd {
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		if err := repo.DeleteRun(ctx, id); err != nil {
			return errMsg{op: "delete run", err: err}
		}
		return runDeletedMsg{id: id}
	}
}

func (m Model) exportCmd(run models.Run) tea.Cmd {
	dir := m.reportsDir
	return func() tea.Msg {
		path, err := report.ExportPDF(dir, run)
		if err != nil {
			return errMsg{op: "export report", err: err}
		}
		return reportExportedMsg{path: path}
	}
}

func (m Model) saveSettingCmd(key, value string) tea.Cmd {
	if m.repo == nil {
		return nil
	}
	ctx, repo := m.ctx, m.repo
	return func() tea.Msg {
		if err := repo.SetSetting(ctx, key, value); err != nil {
			return errMsg{op: "save setting", err: err}
		}
		return settingSavedMsg{}
	}
}
