package core

import "strings"

// Level represents the severity of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// DefaultLevel is the platform default tier. Warnings are logged here.
	DefaultLevel
	// ErrorLevel for errors in application code
	ErrorLevel
	// FaultLevel for errors in system-level or third-party code
	FaultLevel
)

// WarningLevel is the level used for warnings. The platform has no
// separate warning tier, so it is the default tier.
const WarningLevel = DefaultLevel

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case DefaultLevel:
		return "DEFAULT"
	case ErrorLevel:
		return "ERROR"
	case FaultLevel:
		return "FAULT"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the known levels
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= FaultLevel
}

// ParseLevel converts a string to a Level. The second return value is
// false when s names no known level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "DEFAULT", "WARN", "WARNING":
		return DefaultLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "FAULT":
		return FaultLevel, true
	default:
		return InfoLevel, false
	}
}
