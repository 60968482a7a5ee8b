package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler applies a key intent to the model.
type KeyHandler func(m Model) (Model, tea.Cmd)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Views    []ViewState
	Enabled  func(m Model) bool // nil means always enabled
	Priority int
}

func (b KeyBinding) AppliesToView(state ViewState) bool {
	if len(b.Views) == 0 {
		return true
	}
	for _, v := range b.Views {
		if v == state {
			return true
		}
	}
	return false
}

func (b KeyBinding) enabledFor(m Model) bool {
	return b.Enabled == nil || b.Enabled(m)
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle dispatches msg to the first enabled binding for the current view.
// Disabled bindings swallow their key so the intent is a no-op.
func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if !b.AppliesToView(m.state) || !key.Matches(msg, b.Binding) {
			continue
		}
		if !b.enabledFor(m) {
			return m, nil, true
		}
		next, cmd := b.Handler(m)
		return next, cmd, true
	}
	return m, nil, false
}

// BindingsFor returns the bindings of the current view with their enabled
// state resolved, for the help line.
func (r *HandlerRegistry) BindingsFor(m Model) []key.Binding {
	var out []key.Binding
	for _, b := range r.bindings {
		if !b.AppliesToView(m.state) {
			continue
		}
		kb := b.Binding
		kb.SetEnabled(b.enabledFor(m))
		out = append(out, kb)
	}
	return out
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	clock := []ViewState{StateClock}
	history := []ViewState{StateHistory}

	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/pause")),
		Handler:  Model.handleToggle,
		Views:    clock,
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lap")),
		Handler:  Model.handleLap,
		Views:    clock,
		Enabled:  func(m Model) bool { return m.session.Running() },
		Priority: 9,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Handler:  Model.handleReset,
		Views:    clock,
		Priority: 8,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
		Handler:  Model.handleSaveStart,
		Views:    clock,
		Enabled:  func(m Model) bool { return m.repo != nil && m.session.Elapsed() > 0 },
		Priority: 7,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pdf")),
		Handler:  Model.handleExportCurrent,
		Views:    clock,
		Enabled:  func(m Model) bool { return m.session.Elapsed() > 0 },
		Priority: 6,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Handler:  Model.handleHistoryOpen,
		Views:    clock,
		Enabled:  func(m Model) bool { return m.repo != nil },
		Priority: 5,
	})

	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Handler:  Model.handleHistoryUp,
		Views:    history,
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Handler:  Model.handleHistoryDown,
		Views:    history,
		Priority: 9,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Handler:  Model.handleHistoryDelete,
		Views:    history,
		Enabled:  func(m Model) bool { return len(m.runs) > 0 },
		Priority: 8,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pdf")),
		Handler:  Model.handleHistoryExport,
		Views:    history,
		Enabled:  func(m Model) bool { return len(m.runs) > 0 },
		Priority: 7,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("h", "esc"), key.WithHelp("h/esc", "back")),
		Handler:  Model.handleHistoryClose,
		Views:    history,
		Priority: 6,
	})

	confirm := []ViewState{StateConfirmDelete}
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "delete")),
		Handler:  Model.handleDeleteConfirm,
		Views:    confirm,
		Priority: 10,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "keep")),
		Handler:  Model.handleDeleteCancel,
		Views:    confirm,
		Priority: 9,
	})

	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Handler: Model.handleTheme,
		Views:   []ViewState{StateClock, StateHistory},
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Handler:  Model.handleQuit,
		Views:    []ViewState{StateClock, StateHistory},
		Priority: -1,
	})
	return r
}
