package handler

import (
	"errors"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/applog/core"
)

// ZapHandler forwards entries to a zap logger
type ZapHandler struct {
	logger        *zap.Logger
	includeCaller bool
}

// NewZapHandler creates a handler writing to l. A nil logger discards.
// includeCaller controls whether the entry's call site is passed to zap.
func NewZapHandler(l *zap.Logger, includeCaller bool) *ZapHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapHandler{logger: l, includeCaller: includeCaller}
}

// Handle writes the entry through zap, keeping its time and call site
func (h *ZapHandler) Handle(entry *core.Entry) error {
	lvl, fault := zapLevel(entry.Level)
	ce := h.logger.Check(lvl, entry.Message)
	if ce == nil {
		return nil
	}

	ce.Time = entry.Time
	ce.Caller = zapcore.EntryCaller{}
	if h.includeCaller && entry.Caller.Defined {
		file := entry.Caller.File
		if file == "" {
			file = entry.Caller.ShortFile
		}
		ce.Caller = zapcore.EntryCaller{
			Defined:  true,
			File:     file,
			Line:     entry.Caller.Line,
			Function: entry.Caller.Function,
		}
	}

	fields := make([]zap.Field, 0, 3)
	fields = append(fields,
		zap.String("subsystem", entry.Subsystem),
		zap.String("category", entry.Category),
	)
	if fault {
		fields = append(fields, zap.Bool("fault", true))
	}
	ce.Write(fields...)
	return nil
}

// Close flushes buffered zap output. Terminals and pipes cannot be
// synced; those errors are ignored.
func (h *ZapHandler) Close() error {
	err := h.logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

// zapLevel maps a level to zap. zap has no fault tier; the second
// return value reports a fault logged at error level.
func zapLevel(l core.Level) (zapcore.Level, bool) {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel, false
	case core.InfoLevel:
		return zapcore.InfoLevel, false
	case core.DefaultLevel:
		return zapcore.WarnLevel, false
	case core.ErrorLevel:
		return zapcore.ErrorLevel, false
	case core.FaultLevel:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}
