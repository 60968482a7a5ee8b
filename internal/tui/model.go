package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/lapwatch/internal/config"
	"github.com/akyairhashvil/lapwatch/internal/database"
	"github.com/akyairhashvil/lapwatch/internal/models"
	"github.com/akyairhashvil/lapwatch/internal/stopwatch"
	"github.com/akyairhashvil/lapwatch/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState defines which screen has the keyboard.
type ViewState int

const (
	StateClock ViewState = iota
	StateLabel
	StateHistory
	StateConfirmDelete
)

// Model is the root bubbletea model. It owns the timer session and is the
// session's only caller, so every operation runs on the event loop.
type Model struct {
	ctx        context.Context
	repo       database.Repository
	session    *stopwatch.Session
	registry   *HandlerRegistry
	help       help.Model
	labelInput textinput.Model
	state      ViewState

	timer TickSource
	now   func() time.Time

	pending    models.Run
	runs       []models.Run
	runCursor  int
	deleteID   int64
	reportsDir string

	Message       string
	width, height int
}

type Option func(*Model)

// WithClock overrides the wall clock used to measure tick deltas.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithReportsDir sets where PDF reports are written.
func WithReportsDir(dir string) Option {
	return func(m *Model) { m.reportsDir = dir }
}

// NewModel builds the root model. repo may be nil, in which case history is
// unavailable.
func NewModel(ctx context.Context, repo database.Repository, opts ...Option) Model {
	li := textinput.New()
	li.Placeholder = "Run label (optional)"
	li.CharLimit = config.MaxLabelLength
	li.Width = 40

	m := Model{
		ctx:        ctx,
		repo:       repo,
		session:    stopwatch.New(),
		registry:   defaultRegistry(),
		help:       help.New(),
		labelInput: li,
		state:      StateClock,
		now:        time.Now,
		reportsDir: util.ReportsDir(config.AppName),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.timer = NewTickSource(m.now)
	if repo != nil {
		if name, ok := repo.GetSetting(ctx, config.SettingTheme); ok {
			SetTheme(name)
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(config.AppName)
}
