package app

import (
	"io"
	"log/slog"

	"github.com/ardpipeline/modlaunch/internal/config"
	"github.com/ardpipeline/modlaunch/internal/delegate"
	"github.com/ardpipeline/modlaunch/internal/hclcfg"
	"github.com/ardpipeline/modlaunch/internal/yamlcfg"
)

// App encapsulates the launcher's dependencies, configuration, and lifecycle.
type App struct {
	logW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders map[string]config.Loader
	runner  *delegate.Runner
}

// New is the constructor for the launcher. It returns a fully initialized
// App instance with its own isolated logger; nothing is resolved or
// executed until Run. Logs go to logW, which must not be stdout: stdout
// belongs to the delegate.
func New(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	yamlLoader := yamlcfg.NewLoader()
	loaders := map[string]config.Loader{
		".hcl":  hclcfg.NewLoader(),
		".yaml": yamlLoader,
		".yml":  yamlLoader,
	}

	return &App{
		logW:    logW,
		logger:  logger,
		config:  cfg,
		loaders: loaders,
		runner:  delegate.NewRunner(),
	}
}
