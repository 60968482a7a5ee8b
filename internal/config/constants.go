package config

import "time"

// Timer settings.
const (
	// TickInterval is the nominal period of the tick source.
	TickInterval = 10 * time.Millisecond
	// TickQuantum is the unit the session accumulates in. Measured deltas are
	// rounded down to it and the remainder carries into the next tick.
	TickQuantum = time.Millisecond
)

// Persisted setting keys.
const (
	SettingTheme = "theme"
)

// Application settings.
const (
	AppName         = "lapwatch"
	DBFileName      = "history.db"
	DebugLogFile    = "debug.log"
	DebugEnvVar     = "LAPWATCH_DEBUG"
	DefaultRunLabel = "Run"
)
