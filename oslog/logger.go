package oslog

import (
	"reflect"

	"github.com/philipp01105/applog/core"
	"github.com/philipp01105/applog/handler"
)

// Logger is the unified log handle (immutable)
type Logger struct {
	subsystem string
	category  string
	level     core.Level
	handler   handler.Handler
	console   handler.Handler
	stats     *handler.Stats
	// shared is set when the main sink is the console sink
	shared bool
}

// Options configures a Logger built with New
type Options struct {
	Subsystem string
	Category  string
	// Level is the minimum level dispatched. Entries with an unknown
	// level are always dispatched.
	Level core.Level
	// Handler is the main sink (default: discard)
	Handler handler.Handler
	// Console is the local sink used by ConsoleLog (default: a
	// ConsoleHandler on stderr)
	Console handler.Handler
}

// New creates a Logger from explicit sinks
func New(opts Options) *Logger {
	if opts.Handler == nil {
		opts.Handler = handler.DiscardHandler{}
	}
	if opts.Console == nil {
		opts.Console = handler.NewConsoleHandler(handler.ConsoleConfig{})
	}
	return &Logger{
		subsystem: opts.Subsystem,
		category:  opts.Category,
		level:     opts.Level,
		handler:   opts.Handler,
		console:   opts.Console,
		stats:     handler.NewStats(),
		shared:    sameHandler(opts.Handler, opts.Console),
	}
}

// sameHandler reports whether a and b are the same sink. Handlers whose
// dynamic type is not comparable are never the same.
func sameHandler(a, b handler.Handler) (same bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	// structs holding non-comparable values in interface fields panic on ==
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// Subsystem returns the subsystem the handle is tagged with
func (l *Logger) Subsystem() string { return l.subsystem }

// Category returns the category the handle is tagged with
func (l *Logger) Category() string { return l.category }

// Level returns the minimum level dispatched
func (l *Logger) Level() core.Level { return l.level }

// Log dispatches msg to the main sink
func (l *Logger) Log(level core.Level, caller core.CallerInfo, msg string) {
	l.dispatch(l.handler, level, caller, msg)
}

// ConsoleLog dispatches msg to the local console sink only
func (l *Logger) ConsoleLog(level core.Level, caller core.CallerInfo, msg string) {
	l.dispatch(l.console, level, caller, msg)
}

// dispatch hands one entry to h. Sink errors and panics are counted and
// never reach the caller.
func (l *Logger) dispatch(h handler.Handler, level core.Level, caller core.CallerInfo, msg string) {
	if l == nil {
		return
	}
	if level.Valid() && level < l.level {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Subsystem = l.subsystem
	entry.Category = l.category
	entry.Message = msg
	entry.Caller = caller

	defer func() {
		if r := recover(); r != nil {
			l.stats.IncrementFailed()
		}
		core.PutEntry(entry)
	}()

	if err := h.Handle(entry); err != nil {
		l.stats.IncrementFailed()
		return
	}
	l.stats.IncrementProcessed(level)
}

// Stats returns a snapshot of the dispatch statistics
func (l *Logger) Stats() handler.Snapshot {
	return l.stats.GetSnapshot()
}

// Close closes both sinks
func (l *Logger) Close() error {
	if l.shared {
		return l.handler.Close()
	}
	return handler.NewMultiHandler(l.handler, l.console).Close()
}
