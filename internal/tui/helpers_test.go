package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func setupTestModel(t *testing.T) (Model, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	m := NewModel(context.Background(), nil, WithClock(clock.Now), WithReportsDir(t.TempDir()))
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return nm, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

// tickAfter advances the clock by d and delivers a tick from the live chain.
func tickAfter(t *testing.T, m Model, clock *fakeClock, d time.Duration) Model {
	t.Helper()
	m, _ = update(t, m, tickMsg{tag: m.timer.tag, at: clock.Advance(d)})
	return m
}
