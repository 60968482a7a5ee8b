package testutil

import (
	"time"

	"github.com/akyairhashvil/lapwatch/internal/models"
)

// RunBuilder provides fluent API for creating test runs.
type RunBuilder struct {
	run models.Run
}

func NewRun() *RunBuilder {
	return &RunBuilder{
		run: models.Run{
			Label:   "Test Run",
			SavedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

func (b *RunBuilder) WithID(id int64) *RunBuilder {
	b.run.ID = id
	return b
}

func (b *RunBuilder) WithLabel(label string) *RunBuilder {
	b.run.Label = label
	return b
}

// WithSplits records one lap per split, in creation order, and sets the
// elapsed time to their sum.
func (b *RunBuilder) WithSplits(splits ...time.Duration) *RunBuilder {
	var cumulative time.Duration
	laps := make([]models.RunLap, 0, len(splits))
	for i, split := range splits {
		cumulative += split
		laps = append([]models.RunLap{{Number: i + 1, Split: split, Cumulative: cumulative}}, laps...)
	}
	b.run.Laps = laps
	b.run.Elapsed = cumulative
	return b
}

func (b *RunBuilder) WithElapsed(d time.Duration) *RunBuilder {
	b.run.Elapsed = d
	return b
}

func (b *RunBuilder) Build() models.Run {
	return b.run
}
