package handler

import (
	"github.com/philipp01105/applog/core"
)

// Handler defines the interface for log sinks
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// DiscardHandler drops every entry
type DiscardHandler struct{}

// Handle discards the entry
func (DiscardHandler) Handle(*core.Entry) error { return nil }

// Close is a no-op
func (DiscardHandler) Close() error { return nil }
