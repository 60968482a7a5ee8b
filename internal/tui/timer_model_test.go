package tui

import (
	"testing"
	"time"
)

func TestNewTickSourceDefaults(t *testing.T) {
	s := NewTickSource(nil)
	if s.now == nil {
		t.Fatalf("expected default clock")
	}
	if s.tag != 0 {
		t.Fatalf("expected zero tag")
	}
}

func TestTickSourceStartStop(t *testing.T) {
	clock := newFakeClock()
	s := NewTickSource(clock.Now)
	if cmd := s.Start(); cmd == nil {
		t.Fatalf("expected first tick")
	}
	first := tickMsg{tag: s.tag}
	if !s.Live(first) {
		t.Fatalf("expected tick from live chain")
	}
	s.Stop()
	if s.Live(first) {
		t.Fatalf("expected stopped chain to be stale")
	}
	s.Start()
	if s.Live(first) {
		t.Fatalf("expected restarted chain to reject old ticks")
	}
}

func TestTickSourceMeasure(t *testing.T) {
	clock := newFakeClock()
	s := NewTickSource(clock.Now)
	s.Start()
	if d := s.Measure(clock.Advance(12 * time.Millisecond)); d != 12*time.Millisecond {
		t.Fatalf("expected 12ms, got %v", d)
	}
	if d := s.Measure(clock.Now().Add(-time.Millisecond)); d != 0 {
		t.Fatalf("expected backwards reading to yield zero, got %v", d)
	}
	if d := s.Measure(clock.Advance(8 * time.Millisecond)); d != 8*time.Millisecond {
		t.Fatalf("expected 8ms, got %v", d)
	}
}

func TestTickSourceMeasureCarriesRemainder(t *testing.T) {
	clock := newFakeClock()
	s := NewTickSource(clock.Now)
	s.Start()
	want := []time.Duration{1, 2, 1, 2, 2}
	var total time.Duration
	for i, w := range want {
		d := s.Measure(clock.Advance(1600 * time.Microsecond))
		if d != w*time.Millisecond {
			t.Fatalf("tick %d: expected %v, got %v", i+1, w*time.Millisecond, d)
		}
		if d%time.Millisecond != 0 {
			t.Fatalf("tick %d: expected whole milliseconds, got %v", i+1, d)
		}
		total += d
	}
	if total != 8*time.Millisecond {
		t.Fatalf("expected 8ms after five 1.6ms ticks, got %v", total)
	}
}

func TestTickSourceRemainderSurvivesPause(t *testing.T) {
	clock := newFakeClock()
	s := NewTickSource(clock.Now)
	s.Start()
	if d := s.Measure(clock.Advance(600 * time.Microsecond)); d != 0 {
		t.Fatalf("expected sub-millisecond reading to round down, got %v", d)
	}
	s.Stop()
	clock.Advance(time.Second)
	s.Start()
	if d := s.Measure(clock.Advance(600 * time.Microsecond)); d != time.Millisecond {
		t.Fatalf("expected carried remainder to complete a millisecond, got %v", d)
	}
}

func TestTickSourceResetDropsRemainder(t *testing.T) {
	clock := newFakeClock()
	s := NewTickSource(clock.Now)
	s.Start()
	s.Measure(clock.Advance(900 * time.Microsecond))
	s.Reset()
	s.Start()
	if d := s.Measure(clock.Advance(500 * time.Microsecond)); d != 0 {
		t.Fatalf("expected reset to drop the remainder, got %v", d)
	}
}
