package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/applog/core"
)

// LevelFault is the slog level used for faults
const LevelFault = slog.LevelError + 4

// SlogHandler is an adapter that forwards entries to a log/slog.Handler,
// so any slog backend can serve as the sink.
type SlogHandler struct {
	handler       slog.Handler
	includeCaller bool
}

// NewSlogHandler creates a handler writing to h. A nil handler falls back
// to the handler of slog.Default(). includeCaller adds a caller group
// to every record.
func NewSlogHandler(h slog.Handler, includeCaller bool) *SlogHandler {
	if h == nil {
		h = slog.Default().Handler()
	}
	return &SlogHandler{handler: h, includeCaller: includeCaller}
}

// Handle converts the entry to a slog.Record and passes it on
func (s *SlogHandler) Handle(entry *core.Entry) error {
	ctx := context.Background()
	lvl := coreLevelToSlog(entry.Level)
	if !s.handler.Enabled(ctx, lvl) {
		return nil
	}

	record := slog.NewRecord(entry.Time, lvl, entry.Message, 0)
	record.AddAttrs(
		slog.String("subsystem", entry.Subsystem),
		slog.String("category", entry.Category),
	)
	if s.includeCaller && entry.Caller.Defined {
		record.AddAttrs(slog.Group("caller",
			slog.String("file", entry.Caller.ShortFile),
			slog.Int("line", entry.Caller.Line),
			slog.String("function", entry.Caller.Function),
		))
	}

	return s.handler.Handle(ctx, record)
}

// Close is a no-op
func (s *SlogHandler) Close() error {
	return nil
}

// coreLevelToSlog converts a core.Level to a slog.Level.
func coreLevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.DebugLevel:
		return slog.LevelDebug
	case core.DefaultLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	case core.FaultLevel:
		return LevelFault
	default:
		return slog.LevelInfo
	}
}
