// Package util provides logging helpers and file system locations.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// Discard silences the standard logger. The TUI owns the terminal, so stray
// log lines would corrupt the screen.
func Discard() {
	log.SetOutput(io.Discard)
}
