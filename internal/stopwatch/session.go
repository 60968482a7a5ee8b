// Package stopwatch holds the timer session: elapsed time, the running flag
// and the lap history. It performs no I/O and is driven entirely by its
// caller, which owns the tick source.
package stopwatch

import "time"

// Lap is a split captured while the session was running.
type Lap struct {
	Number     int
	Cumulative time.Duration
	Split      time.Duration
}

// Stats summarises the recorded splits.
type Stats struct {
	Fastest Lap
	Slowest Lap
	Mean    time.Duration
	Count   int
}

// Session is a stopwatch with lap support. The zero value is a stopped
// session with nothing recorded.
type Session struct {
	elapsed     time.Duration
	running     bool
	lastLapMark time.Duration
	laps        []Lap // most recent first
}

// New returns a stopped session.
func New() *Session {
	return &Session{}
}

// Toggle flips the running flag and reports the new value.
func (s *Session) Toggle() bool {
	s.running = !s.running
	return s.running
}

// Tick adds d to the elapsed time. Ticks delivered while stopped and
// non-positive deltas are dropped.
func (s *Session) Tick(d time.Duration) {
	if !s.running || d <= 0 {
		return
	}
	s.elapsed += d
}

// Lap records a split at the current elapsed time. It returns false and
// leaves the session untouched when the session is stopped.
func (s *Session) Lap() (Lap, bool) {
	if !s.running {
		return Lap{}, false
	}
	lap := Lap{
		Number:     len(s.laps) + 1,
		Cumulative: s.elapsed,
		Split:      s.elapsed - s.lastLapMark,
	}
	s.laps = append([]Lap{lap}, s.laps...)
	s.lastLapMark = s.elapsed
	return lap, true
}

// Reset stops the session and discards all recorded time and laps.
func (s *Session) Reset() {
	*s = Session{}
}

func (s *Session) Elapsed() time.Duration     { return s.elapsed }
func (s *Session) Running() bool              { return s.running }
func (s *Session) LastLapMark() time.Duration { return s.lastLapMark }
func (s *Session) LapCount() int              { return len(s.laps) }

// CurrentSplit is the time accumulated since the last lap mark.
func (s *Session) CurrentSplit() time.Duration {
	return s.elapsed - s.lastLapMark
}

// Laps returns a copy of the lap history, most recent first.
func (s *Session) Laps() []Lap {
	out := make([]Lap, len(s.laps))
	copy(out, s.laps)
	return out
}

// Stats returns the fastest, slowest and mean split. Ties keep the earlier lap.
func (s *Session) Stats() Stats {
	return Summarize(s.laps)
}

// Summarize computes Stats over laps in any order.
func Summarize(laps []Lap) Stats {
	if len(laps) == 0 {
		return Stats{}
	}
	st := Stats{Count: len(laps)}
	var total time.Duration
	for i, lap := range laps {
		total += lap.Split
		if i == 0 {
			st.Fastest, st.Slowest = lap, lap
			continue
		}
		if lap.Split < st.Fastest.Split || (lap.Split == st.Fastest.Split && lap.Number < st.Fastest.Number) {
			st.Fastest = lap
		}
		if lap.Split > st.Slowest.Split || (lap.Split == st.Slowest.Split && lap.Number < st.Slowest.Number) {
			st.Slowest = lap
		}
	}
	st.Mean = total / time.Duration(len(laps))
	return st
}
