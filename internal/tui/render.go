package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/stopwatch"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// rowWidth is the usable width inside the base margin.
func (m Model) rowWidth() int {
	width := m.width
	if width == 0 {
		width = config.DefaultWidth
	}
	w := width - 4
	if w < config.MinRowWidth {
		w = config.MinRowWidth
	}
	return w
}

// lapRows is how many lap rows fit under the clock.
func (m Model) lapRows() int {
	if m.height == 0 {
		return config.DefaultLapRows
	}
	rows := m.height - config.ReservedRows
	if rows < config.MinLapRows {
		rows = config.MinLapRows
	}
	return rows
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(strings.ToUpper(config.AppName)))
	b.WriteString(CurrentTheme.Dim.Render(" v" + versionLabel()))
	b.WriteString("\n\n")

	switch m.state {
	case StateHistory, StateConfirmDelete:
		b.WriteString(m.renderHistory())
	default:
		b.WriteString(m.renderClock())
	}

	if m.state == StateLabel {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.bordered(CurrentTheme.Input).Render(m.labelInput.View()))
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Dim.Render("enter save • esc cancel"))
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Message.Render(truncateLabel(m.Message, m.rowWidth())))
	}
	if m.state != StateLabel {
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.registry.BindingsFor(m)))
	}
	return CurrentTheme.Base.Render(b.String())
}

func (m Model) renderClock() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.bordered(CurrentTheme.Clock).Render(stopwatch.Format(m.session.Elapsed())))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n\n")
	b.WriteString(m.renderLaps())
	return b.String()
}

func (m Model) renderStatus() string {
	label := FormatStatus(m.session.Running(), m.session.Elapsed().Milliseconds())
	var state string
	switch label {
	case "Running":
		state = CurrentTheme.Running.Render("● " + label)
	case "Paused":
		state = CurrentTheme.Paused.Render("■ " + label)
	default:
		state = CurrentTheme.Dim.Render("○ " + label)
	}
	split := fmt.Sprintf("  Lap %d  %s", m.session.LapCount()+1, stopwatch.Format(m.session.CurrentSplit()))
	return state + CurrentTheme.Dim.Render(split)
}

// renderControls shows the three primary intents. Lap is dimmed while stopped.
func (m Model) renderControls() string {
	toggle := "[space] Start"
	if m.session.Running() {
		toggle = "[space] Pause"
	}
	lap := CurrentTheme.Highlight.Render("[l] Lap")
	if !m.session.Running() {
		lap = CurrentTheme.Dim.Render("[l] Lap")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		CurrentTheme.Highlight.Render(toggle), "   ",
		lap, "   ",
		CurrentTheme.Highlight.Render("[r] Reset"),
	)
}

func (m Model) renderLaps() string {
	laps := m.session.Laps()
	if len(laps) == 0 {
		return CurrentTheme.Dim.Render("No laps yet.")
	}
	st := m.session.Stats()
	width := m.rowWidth()
	limit := m.lapRows()

	var rows []string
	for i, lap := range laps {
		if i >= limit {
			rows = append(rows, CurrentTheme.Dim.Render(fmt.Sprintf("… %d more", len(laps)-limit)))
			break
		}
		line := truncateLabel(FormatLapRow(lap), width)
		style := CurrentTheme.LapRow
		if st.Count > 1 {
			switch lap.Number {
			case st.Fastest.Number:
				style = CurrentTheme.Fastest
			case st.Slowest.Number:
				style = CurrentTheme.Slowest
			}
		}
		rows = append(rows, style.Render(line))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHistory() string {
	if len(m.runs) == 0 {
		return CurrentTheme.Dim.Render("No saved runs.")
	}
	width := m.rowWidth()
	start := 0
	if m.runCursor >= config.MaxHistoryRows {
		start = m.runCursor - config.MaxHistoryRows + 1
	}
	end := start + config.MaxHistoryRows
	if end > len(m.runs) {
		end = len(m.runs)
	}

	var rows []string
	for i := start; i < end; i++ {
		line := FormatRunRow(m.runs[i])
		if i == m.runCursor {
			rows = append(rows, CurrentTheme.Selected.Render(truncateLabel("> "+line, width)))
			continue
		}
		rows = append(rows, CurrentTheme.LapRow.Render(truncateLabel("  "+line, width)))
	}
	if end < len(m.runs) {
		rows = append(rows, CurrentTheme.Dim.Render(fmt.Sprintf("… %d more", len(m.runs)-end)))
	}
	return strings.Join(rows, "\n")
}
