// Package injector registers the application logger at startup.
//
// Call Inject (or InjectInto for a host container) once before the first
// log call. Both build the logger from the environment via
// oslog.LoadConfig and are safe to call again: each call replaces the
// registration with a fresh, fully usable logger.
package injector

import (
	"github.com/philipp01105/applog/logger"
	"github.com/philipp01105/applog/oslog"
)

// Registrar is the resolution mechanism of the host application
type Registrar interface {
	// Register binds the AppLogger capability to factory
	Register(factory func() logger.AppLogger)
}

// Inject builds the application logger, installs it as the package
// default and returns it for explicit passing. A replaced
// *logger.UnifiedLogger default is closed.
func Inject() *logger.UnifiedLogger {
	l := newApplicationLogger()
	if prev, ok := logger.ReplaceDefault(l).(*logger.UnifiedLogger); ok && prev != l {
		_ = prev.Close()
	}
	return l
}

// InjectInto builds the application logger and registers it with r.
// Every resolution yields the same instance.
func InjectInto(r Registrar) *logger.UnifiedLogger {
	l := newApplicationLogger()
	r.Register(func() logger.AppLogger { return l })
	return l
}

// newApplicationLogger never fails: an invalid environment falls back
// to the default configuration and is reported through the new logger.
func newApplicationLogger() *logger.UnifiedLogger {
	cfg, err := oslog.LoadConfig()
	if err != nil {
		defaults := oslog.DefaultConfig()
		cfg = &defaults
	}

	l := logger.New(oslog.NewApplicationLogger(*cfg))
	if err != nil {
		l.Warning("logging configuration ignored: " + err.Error())
	}
	return l
}
