// Package core defines the shared types used across applog.
//
// It provides the Level type for severities, the CallerInfo type that
// identifies where a log call originated, the Entry type that carries a
// single composed record to a sink, and the Field type used for the
// display items attached to console logs.
//
// Entry objects are pooled via sync.Pool. The handle gets an Entry with
// GetEntry, passes it to its handler, and returns it with PutEntry once
// the handler has returned. Handlers must not retain an Entry after
// Handle returns.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// arbitrary types but will cause an allocation.
package core
