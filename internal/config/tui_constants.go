package config

// Layout constants.
const (
	// ReservedRows is the number of rows used by the clock, status and help.
	ReservedRows = 9

	// MinLapRows is the minimum number of lap rows shown on small terminals.
	MinLapRows = 3

	// DefaultLapRows is used before the terminal height is known.
	DefaultLapRows = 12

	// MaxHistoryRows limits saved runs shown before scrolling.
	MaxHistoryRows = 12

	// MinRowWidth is the narrowest width rows are truncated to.
	MinRowWidth = 20

	// TruncationSuffix appended to truncated rows.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxLabelLength is the maximum run label length.
	MaxLabelLength = 40
)

// DefaultWidth is assumed until the first window size message arrives.
const DefaultWidth = 80
