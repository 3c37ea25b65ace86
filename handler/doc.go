// Package handler provides the Handler interface and the sink backends
// a unified log handle dispatches to.
//
// Handlers are synchronous: Handle returns once the backend has accepted
// the entry, and must not retain the entry afterwards. The handle
// recycles it as soon as Handle returns.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer (default: stderr).
//   - ZapHandler forwards entries to a *zap.Logger.
//   - HclogHandler forwards entries to an hclog.Logger.
//   - SlogHandler forwards entries to a log/slog.Handler.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - DiscardHandler drops everything.
//
// Backends without a fault tier log faults at their error level and
// mark them with fault=true.
//
// The Stats type counts processed and failed entries per handle and can
// be queried at runtime for monitoring.
package handler
