package oslog

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/applog/formatter"
	"github.com/philipp01105/applog/handler"
)

// Option customizes NewApplicationLogger
type Option func(*factoryOptions)

type factoryOptions struct {
	output io.Writer
}

// WithOutput redirects every sink of the handle to w (default: stderr)
func WithOutput(w io.Writer) Option {
	return func(o *factoryOptions) {
		o.output = w
	}
}

// NewApplicationLogger creates the application log handle. It never
// fails. With the console backend the main sink is the console sink.
func NewApplicationLogger(cfg Config, opts ...Option) *Logger {
	o := factoryOptions{output: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	subsystem := cfg.subsystem()
	console := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    o.output,
		Formatter: newFormatter(cfg),
	})

	sink := newBackend(cfg, subsystem, o.output)
	shared := sink == nil
	if shared {
		sink = console
	}

	l := New(Options{
		Subsystem: subsystem,
		Category:  ApplicationCategory,
		Level:     cfg.minLevel(),
		Handler:   sink,
		Console:   console,
	})
	l.shared = shared
	return l
}

func newFormatter(cfg Config) formatter.Formatter {
	fcfg := formatter.Config{IncludeCaller: cfg.IncludeCaller}
	if isJSON(cfg) {
		return formatter.NewJSONFormatter(fcfg)
	}
	return formatter.NewTextFormatter(fcfg)
}

// newBackend builds the main sink. A nil handler means the console sink
// is the main sink.
func newBackend(cfg Config, subsystem string, w io.Writer) handler.Handler {
	switch strings.ToLower(cfg.Backend) {
	case BackendZap:
		return handler.NewZapHandler(newZapLogger(cfg, w).Named(subsystem), cfg.IncludeCaller)
	case BackendHclog:
		return handler.NewHclogHandler(hclog.New(&hclog.LoggerOptions{
			Name:       subsystem,
			JSONFormat: isJSON(cfg),
			Output:     w,
			TimeFn:     time.Now,
			Level:      hclog.Trace,
		}))
	case BackendSlog:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		if isJSON(cfg) {
			return handler.NewSlogHandler(slog.NewJSONHandler(w, opts), cfg.IncludeCaller)
		}
		return handler.NewSlogHandler(slog.NewTextHandler(w, opts), cfg.IncludeCaller)
	default:
		return nil
	}
}

// newZapLogger builds a zap logger writing to w. Level filtering is the
// handle's job, so zap accepts everything from debug up. The call site
// comes from the entry, so zap does not capture its own.
func newZapLogger(cfg Config, w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if isJSON(cfg) {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	zcore := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel)
	return zap.New(zcore)
}

func isJSON(cfg Config) bool {
	return strings.EqualFold(cfg.Format, FormatJSON)
}
