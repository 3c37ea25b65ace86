// Package logger is the public API of applog. Most users only need to
// import this package.
//
// AppLogger is the logging capability application code depends on.
// UnifiedLogger is its implementation: every call is tagged with the
// call site, prefixed with a severity glyph and forwarded to a unified
// log handle (package oslog):
//
//	log := logger.New(oslog.NewApplicationLogger(oslog.DefaultConfig()))
//	log.Info("Loaded 3 items")
//	// [ℹ️] [sync.go | sync.(*Job).run + 42] Loaded 3 items
//
// ConsoleLog writes to the handle's local console sink only, and never
// reaches remote diagnostics. Its items are redacted unless the call
// marks them public:
//
//	log.ConsoleLog("token issued", logger.String("token", tok))
//	log.ConsoleLogAt(logger.DebugLevel, false, "retry", logger.Int("attempt", n))
//
// A UnifiedLogger is immutable and safe for concurrent use. Construct one
// at startup and pass it to the components that need it, directly or
// through a context.Context (WithContext, FromContext). The package-level
// functions delegate to a default logger, which injector.Inject replaces
// with one configured from the environment.
//
// Logging never fails: sink errors are counted on the handle and
// otherwise dropped.
package logger
