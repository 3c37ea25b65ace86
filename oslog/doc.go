// Package oslog provides the process-wide unified log handle.
//
// A Logger is tagged with a subsystem (the application identifier) and a
// category, and dispatches composed messages to two sinks: the main sink,
// which may forward to remote diagnostics, and a local console sink that
// never leaves the process. The handle is immutable after construction
// and safe for concurrent use.
//
// NewApplicationLogger is the factory. It is infallible: it builds the
// backend chosen in Config, and an unknown backend uses the console sink
// as the main sink. LoadConfig reads Config from the environment:
//
//	APPLOG_SUBSYSTEM  application identifier (default com.bh.logging)
//	APPLOG_BACKEND    console | zap | hclog | slog (default console)
//	APPLOG_FORMAT     text | json (default text)
//	APPLOG_LEVEL      minimum level (default debug)
//	APPLOG_CALLER     include structured caller data (default true)
package oslog
