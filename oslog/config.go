package oslog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/philipp01105/applog/core"
)

const (
	// DefaultSubsystem identifies the application when none is configured
	DefaultSubsystem = "com.bh.logging"
	// ApplicationCategory is the category of the application logger
	ApplicationCategory = "Application"

	BackendConsole = "console"
	BackendZap     = "zap"
	BackendHclog   = "hclog"
	BackendSlog    = "slog"

	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config describes how the application log handle is built
type Config struct {
	Subsystem     string `env:"APPLOG_SUBSYSTEM"`
	Backend       string `env:"APPLOG_BACKEND" envDefault:"console"`
	Format        string `env:"APPLOG_FORMAT" envDefault:"text"`
	Level         string `env:"APPLOG_LEVEL" envDefault:"debug"`
	IncludeCaller bool   `env:"APPLOG_CALLER" envDefault:"true"`
}

// DefaultConfig returns the configuration used when the environment sets
// nothing, without reading the environment.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendConsole,
		Format:        FormatText,
		Level:         "debug",
		IncludeCaller: true,
	}
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *Config) error {
	envError := make([]string, 0)

	switch strings.ToLower(envVars.Backend) {
	case BackendConsole, BackendZap, BackendHclog, BackendSlog:
	default:
		envError = append(envError, "APPLOG_BACKEND must be one of console, zap, hclog, slog")
	}

	switch strings.ToLower(envVars.Format) {
	case FormatText, FormatJSON:
	default:
		envError = append(envError, "APPLOG_FORMAT must be one of text, json")
	}

	if _, ok := core.ParseLevel(envVars.Level); !ok {
		envError = append(envError, "APPLOG_LEVEL is not a valid level")
	}

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}

func (c Config) subsystem() string {
	if s := strings.TrimSpace(c.Subsystem); s != "" {
		return s
	}
	return DefaultSubsystem
}

// minLevel returns the configured minimum level, debug when unset or invalid
func (c Config) minLevel() core.Level {
	if l, ok := core.ParseLevel(c.Level); ok {
		return l
	}
	return core.DebugLevel
}
