package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// BaseDir overrides self-location of the launcher directory. Empty
	// means resolve it from the running executable.
	BaseDir string
	// ConfigPath points at an explicit launcher config file. Empty means
	// probe for one next to the launcher binary.
	ConfigPath string

	LogFormat string
	LogLevel  string
	DryRun    bool

	// ForwardArgs is the caller's argument list, passed to the delegate
	// byte-for-byte.
	ForwardArgs []string
	// Environ is the caller's environment, the base the delegate
	// environment is built from.
	Environ []string
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Environ == nil {
		return nil, errors.New("Environ is a required configuration field and cannot be nil")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
