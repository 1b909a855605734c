package cli

import (
	"log/slog"
	"strings"

	"github.com/ardpipeline/modlaunch/internal/app"
	"github.com/ardpipeline/modlaunch/internal/envspec"
)

// Launcher settings read from the environment. None of these are forwarded
// arguments; argv stays untouched for the delegate.
const (
	EnvLogLevel   = "MODLAUNCH_LOG_LEVEL"
	EnvLogFormat  = "MODLAUNCH_LOG_FORMAT"
	EnvConfigPath = "MODLAUNCH_CONFIG"
	EnvBaseDir    = "MODLAUNCH_BASE_DIR"
	EnvDryRun     = "MODLAUNCH_DRY_RUN"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse assembles the launcher configuration from the caller's argument
// list and environment. It returns a populated app.Config or an ExitError.
func Parse(args, environ []string) (*app.Config, error) {
	slog.Debug("CLI parser started.")

	logFormat := strings.ToLower(envValue(environ, EnvLogFormat, "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid " + EnvLogFormat + ": must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(envValue(environ, EnvLogLevel, "info"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: 2, Message: "invalid " + EnvLogLevel + ": must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("Launcher settings validated.")

	config, err := app.NewConfig(app.Config{
		BaseDir:     envValue(environ, EnvBaseDir, ""),
		ConfigPath:  envValue(environ, EnvConfigPath, ""),
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		DryRun:      envValue(environ, EnvDryRun, "") != "",
		ForwardArgs: args,
		Environ:     environ,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "forward_args", len(args))
	return config, nil
}

// envValue reads name from an environ slice, falling back to def when the
// variable is unset or empty.
func envValue(environ []string, name, def string) string {
	if v, ok := envspec.Lookup(environ, name); ok && v != "" {
		return v
	}
	return def
}
