package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/report"
	"github.com/akyairhashvil/lapwatch/internal/stopwatch"
	"github.com/akyairhashvil/lapwatch/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case runSavedMsg:
		m.Message = fmt.Sprintf("Saved run #%d", msg.id)
		return m, nil
	case runsLoadedMsg:
		m.runs = msg.runs
		m.runCursor = util.Clamp(m.runCursor, 0, max(len(m.runs)-1, 0))
		return m, nil
	case runLoadedMsg:
		return m, m.exportCmd(msg.run)
	case runDeletedMsg:
		m.Message = fmt.Sprintf("Deleted run #%d", msg.id)
		return m, m.loadRunsCmd()
	case reportExportedMsg:
		m.Message = "Report written: " + msg.path
		return m, nil
	case settingSavedMsg:
		return m, nil
	case errMsg:
		util.LogError(msg.op, msg.err)
		m.Message = fmt.Sprintf("Could not %s: %v", msg.op, msg.err)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.state == StateLabel {
			return m.updateLabel(msg)
		}
		next, cmd, _ := m.registry.Handle(m, msg)
		return next, cmd
	}

	if m.state == StateLabel {
		var cmd tea.Cmd
		m.labelInput, cmd = m.labelInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick applies the time measured since the previous tick and re-arms
// the chain. Stale chains end here.
func (m Model) handleTick(msg tickMsg) (Model, tea.Cmd) {
	if !m.timer.Live(msg) || !m.session.Running() {
		return m, nil
	}
	m.session.Tick(m.timer.Measure(msg.at))
	return m, m.timer.Next()
}

// catchUp folds the time since the last tick into a running session.
func (m *Model) catchUp() {
	if m.session.Running() {
		m.session.Tick(m.timer.Measure(m.timer.Now()))
	}
}

func (m Model) handleToggle() (Model, tea.Cmd) {
	m.catchUp()
	if m.session.Toggle() {
		return m, m.timer.Start()
	}
	m.timer.Stop()
	return m, nil
}

func (m Model) handleLap() (Model, tea.Cmd) {
	m.catchUp()
	if lap, ok := m.session.Lap(); ok {
		m.Message = fmt.Sprintf("Lap %d  %s", lap.Number, stopwatch.Format(lap.Split))
	}
	return m, nil
}

func (m Model) handleReset() (Model, tea.Cmd) {
	m.timer.Reset()
	m.session.Reset()
	m.Message = ""
	return m, nil
}

func (m Model) handleSaveStart() (Model, tea.Cmd) {
	m.catchUp()
	m.pending = report.FromSession("", m.session)
	m.state = StateLabel
	m.labelInput.Reset()
	return m, m.labelInput.Focus()
}

func (m Model) updateLabel(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		run := m.pending
		run.Label = strings.TrimSpace(m.labelInput.Value())
		m.pending = models.Run{}
		m.state = StateClock
		m.labelInput.Blur()
		m.Message = "Saving..."
		return m, m.saveRunCmd(run)
	case tea.KeyEsc:
		m.pending = models.Run{}
		m.state = StateClock
		m.labelInput.Blur()
		m.Message = "Save cancelled"
		return m, nil
	}
	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	return m, cmd
}

func (m Model) handleExportCurrent() (Model, tea.Cmd) {
	m.catchUp()
	m.Message = "Exporting..."
	return m, m.exportCmd(report.FromSession("", m.session))
}

func (m Model) handleHistoryOpen() (Model, tea.Cmd) {
	m.state = StateHistory
	m.runCursor = 0
	return m, m.loadRunsCmd()
}

func (m Model) handleHistoryClose() (Model, tea.Cmd) {
	m.state = StateClock
	return m, nil
}

func (m Model) handleHistoryUp() (Model, tea.Cmd) {
	if m.runCursor > 0 {
		m.runCursor--
	}
	return m, nil
}

func (m Model) handleHistoryDown() (Model, tea.Cmd) {
	if m.runCursor < len(m.runs)-1 {
		m.runCursor++
	}
	return m, nil
}

func (m Model) selectedRun() (models.Run, bool) {
	if m.runCursor < 0 || m.runCursor >= len(m.runs) {
		return models.Run{}, false
	}
	return m.runs[m.runCursor], true
}

// handleHistoryDelete asks before removing the selected run.
func (m Model) handleHistoryDelete() (Model, tea.Cmd) {
	run, ok := m.selectedRun()
	if !ok {
		return m, nil
	}
	m.deleteID = run.ID
	m.state = StateConfirmDelete
	m.Message = fmt.Sprintf("Delete run #%d? (y/n)", run.ID)
	return m, nil
}

func (m Model) handleDeleteConfirm() (Model, tea.Cmd) {
	id := m.deleteID
	m.deleteID = 0
	m.state = StateHistory
	m.Message = "Deleting..."
	return m, m.deleteRunCmd(id)
}

func (m Model) handleDeleteCancel() (Model, tea.Cmd) {
	m.deleteID = 0
	m.state = StateHistory
	m.Message = "Delete cancelled"
	return m, nil
}

// handleHistoryExport reloads the selected run so the report reflects what
// is stored, then exports it.
func (m Model) handleHistoryExport() (Model, tea.Cmd) {
	run, ok := m.selectedRun()
	if !ok {
		return m, nil
	}
	m.Message = "Exporting..."
	return m, m.loadRunCmd(run.ID)
}

func (m Model) handleTheme() (Model, tea.Cmd) {
	next := NextTheme(currentThemeKey)
	SetTheme(next)
	m.Message = "Theme: " + CurrentTheme.Name
	return m, m.saveSettingCmd(config.SettingTheme, next)
}

func (m Model) handleQuit() (Model, tea.Cmd) {
	return m, tea.Quit
}
