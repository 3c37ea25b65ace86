package logger

import (
	"github.com/philipp01105/applog/core"
	"github.com/philipp01105/applog/formatter"
	"github.com/philipp01105/applog/oslog"
)

// AppLogger is the interface to the unified logging system for the
// application. Implementations capture the call site of every method.
type AppLogger interface {
	// ConsoleLog logs to the console only, without notifying diagnostic
	// tools, at InfoLevel with private items.
	ConsoleLog(message string, items ...core.Field)

	// ConsoleLogAt logs to the console only at the given level. When
	// isPrivate is set the item values are redacted; the message is not.
	ConsoleLogAt(level core.Level, isPrivate bool, message string, items ...core.Field)

	// Log logs a message at the given level.
	Log(level core.Level, message string)

	// Debug logs detailed information for debugging an event.
	Debug(message string)

	// Info logs general information, such as the order of a stream of events.
	Info(message string)

	// Warning logs something in our code that can result in errors.
	Warning(message string)

	// Error logs an error in our code.
	Error(message string)

	// Fault logs an error in system-level or third-party code.
	Fault(message string)
}

// Make sure that UnifiedLogger is an AppLogger.
var _ AppLogger = &UnifiedLogger{}

// defaultCallerSkip skips GetCaller, the internal log method and the
// public method, landing on the user's call.
const defaultCallerSkip = 3

// UnifiedLogger forwards to a unified log handle (immutable)
type UnifiedLogger struct {
	handle     *oslog.Logger
	callerSkip int
}

// Builder provides a fluent API for building UnifiedLogger instances
type Builder struct {
	handle     *oslog.Logger
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{callerSkip: defaultCallerSkip}
}

// WithHandle sets the unified log handle
func (b *Builder) WithHandle(h *oslog.Logger) *Builder {
	b.handle = h
	return b
}

// WithCallerSkip skips n additional stack frames when capturing the call
// site, for loggers called through wrapper functions.
func (b *Builder) WithCallerSkip(n int) *Builder {
	b.callerSkip = defaultCallerSkip + n
	return b
}

// Build creates the UnifiedLogger instance. Without a handle it builds
// the application handle from the default configuration.
func (b *Builder) Build() *UnifiedLogger {
	h := b.handle
	if h == nil {
		h = oslog.NewApplicationLogger(oslog.DefaultConfig())
	}
	return &UnifiedLogger{
		handle:     h,
		callerSkip: b.callerSkip,
	}
}

// New creates a UnifiedLogger forwarding to h
func New(h *oslog.Logger) *UnifiedLogger {
	return NewBuilder().WithHandle(h).Build()
}

// WithCallerSkip returns a copy that skips n more stack frames
func (l *UnifiedLogger) WithCallerSkip(n int) *UnifiedLogger {
	return &UnifiedLogger{
		handle:     l.handle,
		callerSkip: l.callerSkip + n,
	}
}

// Handle returns the unified log handle
func (l *UnifiedLogger) Handle() *oslog.Logger {
	return l.handle
}

// log captures the call site and forwards. It must be called directly
// from an exported method or package function.
func (l *UnifiedLogger) log(level core.Level, msg string) {
	if l == nil {
		return
	}
	l.LogFrom(core.GetCaller(l.callerSkip), level, msg)
}

// consoleLog is the console counterpart of log
func (l *UnifiedLogger) consoleLog(level core.Level, isPrivate bool, msg string, items []core.Field) {
	if l == nil {
		return
	}
	l.ConsoleLogFrom(core.GetCaller(l.callerSkip), level, isPrivate, msg, items...)
}

// LogFrom logs msg with an explicit call site
func (l *UnifiedLogger) LogFrom(caller core.CallerInfo, level core.Level, msg string) {
	if l == nil {
		return
	}
	l.handle.Log(level, caller, formatter.Compose(level, caller, msg))
}

// ConsoleLogFrom logs msg to the console sink with an explicit call site
func (l *UnifiedLogger) ConsoleLogFrom(caller core.CallerInfo, level core.Level, isPrivate bool, msg string, items ...core.Field) {
	if l == nil {
		return
	}
	l.handle.ConsoleLog(level, caller, formatter.ComposeConsole(caller, msg, items, isPrivate))
}

// ConsoleLog logs to the console sink at InfoLevel with private items
func (l *UnifiedLogger) ConsoleLog(msg string, items ...core.Field) {
	l.consoleLog(core.InfoLevel, true, msg, items)
}

// ConsoleLogAt logs to the console sink
func (l *UnifiedLogger) ConsoleLogAt(level core.Level, isPrivate bool, msg string, items ...core.Field) {
	l.consoleLog(level, isPrivate, msg, items)
}

// Log logs a message at the specified level
func (l *UnifiedLogger) Log(level core.Level, msg string) {
	l.log(level, msg)
}

// Debug logs a debug message
func (l *UnifiedLogger) Debug(msg string) {
	l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *UnifiedLogger) Info(msg string) {
	l.log(core.InfoLevel, msg)
}

// Warning logs a warning at the platform default level
func (l *UnifiedLogger) Warning(msg string) {
	l.log(core.WarningLevel, msg)
}

// Error logs an error message
func (l *UnifiedLogger) Error(msg string) {
	l.log(core.ErrorLevel, msg)
}

// Fault logs a fault message
func (l *UnifiedLogger) Fault(msg string) {
	l.log(core.FaultLevel, msg)
}

// Close closes the handle's sinks
func (l *UnifiedLogger) Close() error {
	if l == nil {
		return nil
	}
	return l.handle.Close()
}
