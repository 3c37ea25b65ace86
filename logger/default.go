package logger

import (
	"sync"

	"github.com/philipp01105/applog/core"
	"github.com/philipp01105/applog/oslog"
)

var (
	defaultLogger AppLogger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New(oslog.NewApplicationLogger(oslog.DefaultConfig()))
}

// Default returns the default logger
func Default() AppLogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. A nil logger is ignored.
func SetDefault(l AppLogger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// ReplaceDefault sets the default logger and returns the one it
// replaced. A nil logger is ignored and nil is returned.
func ReplaceDefault(l AppLogger) AppLogger {
	if l == nil {
		return nil
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultLogger
	defaultLogger = l
	return prev
}

// Package-level convenience functions using the default logger. When the
// default is a *UnifiedLogger they call its internal methods directly so
// the captured call site is the caller of the package function.

func defaultUnified() (*UnifiedLogger, AppLogger) {
	d := Default()
	ul, _ := d.(*UnifiedLogger)
	return ul, d
}

// ConsoleLog logs to the console sink using the default logger
func ConsoleLog(msg string, items ...core.Field) {
	if ul, d := defaultUnified(); ul != nil {
		ul.consoleLog(core.InfoLevel, true, msg, items)
	} else {
		d.ConsoleLog(msg, items...)
	}
}

// ConsoleLogAt logs to the console sink using the default logger
func ConsoleLogAt(level Level, isPrivate bool, msg string, items ...core.Field) {
	if ul, d := defaultUnified(); ul != nil {
		ul.consoleLog(level, isPrivate, msg, items)
	} else {
		d.ConsoleLogAt(level, isPrivate, msg, items...)
	}
}

// Log logs a message at the given level using the default logger
func Log(level Level, msg string) {
	if ul, d := defaultUnified(); ul != nil {
		ul.log(level, msg)
	} else {
		d.Log(level, msg)
	}
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	if ul, d := defaultUnified(); ul != nil {
		ul.log(core.DebugLevel, msg)
	} else {
		d.Debug(msg)
	}
}

// Info logs an info message using the default logger
func Info(msg string) {
	if ul, d := defaultUnified(); ul != nil {
		ul.log(core.InfoLevel, msg)
	} else {
		d.Info(msg)
	}
}

// Warning logs a warning using the default logger
func Warning(msg string) {
	if ul, d := defaultUnified(); ul != nil {
		ul.log(core.WarningLevel, msg)
	} else {
		d.Warning(msg)
	}
}

// Error logs an error message using the default logger
func Error(msg string) {
	if ul, d := defaultUnified(); ul != nil {
		ul.log(core.ErrorLevel, msg)
	} else {
		d.Error(msg)
	}
}

// Fault logs a fault message using the default logger
func Fault(msg string) {
	if ul, d := defaultUnified(); ul != nil {
		ul.log(core.FaultLevel, msg)
	} else {
		d.Fault(msg)
	}
}
