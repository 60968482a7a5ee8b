package models

import "time"

// Run is a saved stopwatch session.
type Run struct {
	ID      int64
	Label   string
	Elapsed time.Duration
	SavedAt time.Time
	Laps    []RunLap // most recent first
}

// RunLap is one lap of a saved run.
type RunLap struct {
	Number     int
	Split      time.Duration
	Cumulative time.Duration
}

// Saved reports whether the run has been persisted.
func (r Run) Saved() bool {
	return r.ID > 0
}
