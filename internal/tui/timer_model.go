package tui

import (
	"time"

	"github.com/akyairhashvil/lapwatch/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// TickSource tracks the live chain of tick commands. Every start and stop
// bumps the tag, so ticks from an earlier chain can be recognised and dropped.
type TickSource struct {
	tag      int
	lastTick time.Time
	carry    time.Duration
	now      func() time.Time
}

func NewTickSource(now func() time.Time) TickSource {
	if now == nil {
		now = time.Now
	}
	return TickSource{now: now}
}

// Start begins a new chain and returns its first tick.
func (s *TickSource) Start() tea.Cmd {
	s.tag++
	s.lastTick = s.now()
	return tickCmd(s.tag)
}

// Stop cancels the live chain. Time below one quantum is kept for the
// next chain.
func (s *TickSource) Stop() {
	s.tag++
	s.lastTick = time.Time{}
}

// Reset cancels the live chain and drops any carried remainder.
func (s *TickSource) Reset() {
	s.Stop()
	s.carry = 0
}

// Live reports whether msg belongs to the current chain.
func (s *TickSource) Live(msg tickMsg) bool {
	return msg.tag == s.tag
}

// Next re-arms the current chain.
func (s *TickSource) Next() tea.Cmd {
	return tickCmd(s.tag)
}

// Measure returns the time since the previous measurement in whole
// config.TickQuantum steps and moves the mark to at. The part below one step
// is kept and added to the next reading. Non-increasing readings yield zero
// and leave the mark alone.
func (s *TickSource) Measure(at time.Time) time.Duration {
	d := at.Sub(s.lastTick)
	if d <= 0 {
		return 0
	}
	s.lastTick = at
	s.carry += d
	whole := s.carry.Truncate(config.TickQuantum)
	s.carry -= whole
	return whole
}

// Now reads the source's clock.
func (s *TickSource) Now() time.Time {
	return s.now()
}
