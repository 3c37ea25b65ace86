package logger

import (
	"github.com/philipp01105/applog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	DefaultLevel = core.DefaultLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	FaultLevel   = core.FaultLevel
)

// ParseLevel converts a string to a Level, defaulting to InfoLevel
func ParseLevel(s string) Level {
	l, _ := core.ParseLevel(s)
	return l
}
