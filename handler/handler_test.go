package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/applog/core"
	"github.com/philipp01105/applog/formatter"
)

func newEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:      time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:     level,
		Subsystem: "com.example.app",
		Category:  "Application",
		Message:   msg,
		Caller: core.CallerInfo{
			File:      "/src/sync.go",
			ShortFile: "sync.go",
			Line:      42,
			Function:  "sync.run",
			Defined:   true,
		},
	}
}

type failingHandler struct {
	err    error
	closed bool
}

func (f *failingHandler) Handle(*core.Entry) error { return f.err }
func (f *failingHandler) Close() error {
	f.closed = true
	return f.err
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "test message")))
	assert.Equal(t, "2026-02-18T13:00:00Z [INFO] [com.example.app:Application] test message\n", buf.String())
}

type plainFormatter struct{}

func (plainFormatter) Format(e *core.Entry) ([]byte, error) {
	return []byte(e.Message + "\n"), nil
}

func TestConsoleHandler_PlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Formatter: plainFormatter{}})

	require.NoError(t, h.Handle(newEntry(core.DebugLevel, "one")))
	require.NoError(t, h.Handle(newEntry(core.DebugLevel, "two")))
	assert.Equal(t, "one\ntwo\n", buf.String())
}

func TestConsoleHandler_Defaults(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{})
	assert.NotNil(t, h.writer)
	assert.NotNil(t, h.writerFormatter)
	assert.NoError(t, h.Close())
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	h1 := NewConsoleHandler(ConsoleConfig{Writer: &buf1})
	h2 := NewConsoleHandler(ConsoleConfig{Writer: &buf2})

	multi := NewMultiHandler(h1, nil, h2)
	defer multi.Close()

	require.NoError(t, multi.Handle(newEntry(core.InfoLevel, "multi test")))
	assert.Contains(t, buf1.String(), "multi test")
	assert.Contains(t, buf2.String(), "multi test")
}

func TestMultiHandler_CombinesErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	a := &failingHandler{err: errA}
	b := &failingHandler{err: errB}
	var buf bytes.Buffer
	ok := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	multi := NewMultiHandler(a, ok, b)

	err := multi.Handle(newEntry(core.ErrorLevel, "still delivered"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Contains(t, buf.String(), "still delivered")

	err = multi.Close()
	assert.ErrorIs(t, err, errA)
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func TestZapHandler(t *testing.T) {
	zcore, logs := observer.New(zapcore.DebugLevel)
	h := NewZapHandler(zap.New(zcore), true)

	tests := []struct {
		level core.Level
		want  zapcore.Level
		fault bool
	}{
		{core.DebugLevel, zapcore.DebugLevel, false},
		{core.InfoLevel, zapcore.InfoLevel, false},
		{core.WarningLevel, zapcore.WarnLevel, false},
		{core.ErrorLevel, zapcore.ErrorLevel, false},
		{core.FaultLevel, zapcore.ErrorLevel, true},
		{core.Level(9), zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			require.NoError(t, h.Handle(newEntry(tt.level, "zap "+tt.level.String())))

			got := logs.TakeAll()
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Level)
			assert.Equal(t, "zap "+tt.level.String(), got[0].Message)
			assert.Equal(t, time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC), got[0].Time)
			assert.Equal(t, 42, got[0].Caller.Line)

			ctx := got[0].ContextMap()
			assert.Equal(t, "com.example.app", ctx["subsystem"])
			assert.Equal(t, "Application", ctx["category"])
			if tt.fault {
				assert.Equal(t, true, ctx["fault"])
			} else {
				assert.NotContains(t, ctx, "fault")
			}
		})
	}
}

func TestZapHandler_LevelDisabled(t *testing.T) {
	zcore, logs := observer.New(zapcore.ErrorLevel)
	h := NewZapHandler(zap.New(zcore), true)

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "filtered")))
	assert.Zero(t, logs.Len())
}

func TestZapHandler_Nil(t *testing.T) {
	h := NewZapHandler(nil, true)
	assert.NoError(t, h.Handle(newEntry(core.InfoLevel, "nop")))
	assert.NoError(t, h.Close())
}

func TestZapHandler_ShortFileCaller(t *testing.T) {
	var buf bytes.Buffer
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	h := NewZapHandler(zap.New(zapcore.NewCore(enc, zapcore.AddSync(&buf), zapcore.DebugLevel)), true)

	entry := newEntry(core.InfoLevel, "explicit site")
	entry.Caller = core.CallerInfo{ShortFile: "sync.go", Line: 42, Defined: true}
	require.NoError(t, h.Handle(entry))

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "sync.go:42", data["caller"])
}

func TestZapHandler_WithoutCaller(t *testing.T) {
	zcore, logs := observer.New(zapcore.DebugLevel)
	h := NewZapHandler(zap.New(zcore, zap.AddCaller()), false)

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "no caller")))

	got := logs.TakeAll()
	require.Len(t, got, 1)
	assert.False(t, got[0].Caller.Defined)
}

// syncErrWriter is a zap sink whose Sync always fails with err
type syncErrWriter struct {
	bytes.Buffer
	err error
}

func (s *syncErrWriter) Sync() error { return s.err }

func TestZapHandler_Close(t *testing.T) {
	newHandler := func(err error) *ZapHandler {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		w := &syncErrWriter{err: err}
		return NewZapHandler(zap.New(zapcore.NewCore(enc, w, zapcore.DebugLevel)), true)
	}

	assert.NoError(t, newHandler(nil).Close())
	assert.NoError(t, newHandler(&os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}).Close())
	assert.NoError(t, newHandler(&os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.ENOTTY}).Close())

	diskErr := &os.PathError{Op: "sync", Path: "/var/log/app", Err: syscall.EIO}
	assert.ErrorIs(t, newHandler(diskErr).Close(), syscall.EIO)
}

func TestHclogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewHclogHandler(hclog.New(&hclog.LoggerOptions{
		Name:       "com.example.app",
		JSONFormat: true,
		Output:     &buf,
		Level:      hclog.Trace,
	}))

	tests := []struct {
		level core.Level
		want  string
		fault bool
	}{
		{core.DebugLevel, "debug", false},
		{core.InfoLevel, "info", false},
		{core.WarningLevel, "warn", false},
		{core.ErrorLevel, "error", false},
		{core.FaultLevel, "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf.Reset()
			require.NoError(t, h.Handle(newEntry(tt.level, "hclog message")))

			var data map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
			assert.Equal(t, tt.want, data["@level"])
			assert.Equal(t, "hclog message", data["@message"])
			assert.Equal(t, "Application", data["category"])
			assert.Equal(t, "com.example.app", data["subsystem"])
			if tt.fault {
				assert.Equal(t, true, data["fault"])
			} else {
				assert.NotContains(t, data, "fault")
			}
		})
	}
	assert.NoError(t, h.Close())
}

func TestHclogHandler_Nil(t *testing.T) {
	assert.NoError(t, NewHclogHandler(nil).Handle(newEntry(core.InfoLevel, "null")))
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewSlogHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), true)

	require.NoError(t, h.Handle(newEntry(core.FaultLevel, "slog message")))

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "ERROR+4", data["level"])
	assert.Equal(t, "slog message", data["msg"])
	assert.Equal(t, "com.example.app", data["subsystem"])

	caller, ok := data["caller"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "sync.go", caller["file"])
	assert.Equal(t, float64(42), caller["line"])
	assert.NoError(t, h.Close())
}

func TestSlogHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewSlogHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}), true)

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "hidden")))
	assert.Zero(t, buf.Len())

	require.NoError(t, h.Handle(newEntry(core.WarningLevel, "shown")))
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestSlogHandler_WithoutCaller(t *testing.T) {
	var buf bytes.Buffer
	h := NewSlogHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}), false)

	require.NoError(t, h.Handle(newEntry(core.InfoLevel, "no caller")))

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.NotContains(t, data, "caller")
	assert.Equal(t, "com.example.app", data["subsystem"])
}

func TestCoreLevelToSlog(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, coreLevelToSlog(core.DebugLevel))
	assert.Equal(t, slog.LevelInfo, coreLevelToSlog(core.InfoLevel))
	assert.Equal(t, slog.LevelWarn, coreLevelToSlog(core.DefaultLevel))
	assert.Equal(t, slog.LevelError, coreLevelToSlog(core.ErrorLevel))
	assert.Equal(t, LevelFault, coreLevelToSlog(core.FaultLevel))
	assert.Equal(t, slog.LevelInfo, coreLevelToSlog(core.Level(-3)))
}

func TestDiscardHandler(t *testing.T) {
	var h Handler = DiscardHandler{}
	assert.NoError(t, h.Handle(newEntry(core.InfoLevel, "gone")))
	assert.NoError(t, h.Close())
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed(core.InfoLevel)
	s.IncrementProcessed(core.InfoLevel)
	s.IncrementProcessed(core.FaultLevel)
	s.IncrementProcessed(core.Level(50))
	s.IncrementFailed()

	assert.Equal(t, uint64(2), s.GetProcessed(core.InfoLevel))
	assert.Equal(t, uint64(1), s.GetProcessed(core.FaultLevel))
	assert.Equal(t, uint64(1), s.GetProcessed(core.Level(50)))
	assert.Equal(t, uint64(4), s.GetTotalProcessed())
	assert.Equal(t, uint64(1), s.GetFailed())

	snap := s.GetSnapshot()
	assert.Equal(t, uint64(2), snap.Processed[core.InfoLevel])
	assert.Equal(t, uint64(0), snap.Processed[core.DebugLevel])
	assert.Equal(t, uint64(4), snap.ProcessedTotal)
	assert.Equal(t, uint64(1), snap.FailedTotal)

	s.Reset()
	assert.Zero(t, s.GetTotalProcessed())
	assert.Zero(t, s.GetFailed())
}
