package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardpipeline/modlaunch/internal/config"
	"github.com/ardpipeline/modlaunch/internal/ctxlog"
	"github.com/ardpipeline/modlaunch/internal/delegate"
	"github.com/ardpipeline/modlaunch/internal/envspec"
)

// configFileNames are probed, in order, next to the launcher binary when no
// explicit config path is given.
var configFileNames = []string{"modlaunch.hcl", "modlaunch.yaml", "modlaunch.yml"}

// Run executes the launcher sequence: resolve the base directory, enter it,
// load the launcher config, build the delegate environment, locate the
// delegate, and run it. The returned int is the exit code the launcher
// process must finish with when err is nil.
func (a *App) Run(ctx context.Context) (int, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	baseDir := a.config.BaseDir
	if baseDir == "" {
		resolved, err := delegate.ResolveBaseDir()
		if err != nil {
			return 0, err
		}
		baseDir = resolved
	}
	if err := delegate.Enter(baseDir); err != nil {
		return 0, err
	}
	a.logger.Debug("Base directory resolved.", "dir", baseDir)

	model, err := a.loadModel(ctx, baseDir)
	if err != nil {
		return 0, err
	}
	a.logger.Debug("Launcher config model ready.", "delegate", model.Delegate, "env_count", len(model.Vars))

	env := envspec.Apply(a.config.Environ, model.Vars)

	path, err := delegate.Locate(baseDir, model.Delegate)
	if err != nil {
		return 0, err
	}
	a.logger.Debug("Delegate located.", "path", path)

	if a.config.DryRun {
		a.logger.Info("Dry run: delegate not invoked.", "delegate", path, "args", a.config.ForwardArgs)
		return 0, nil
	}

	code, err := a.runner.Run(ctx, path, a.config.ForwardArgs, env)
	if err != nil {
		return 0, err
	}
	a.logger.Debug("App.Run method finished.", "exit_code", code)
	return code, nil
}

// loadModel resolves which config file to use, if any, and merges it over
// the built-in defaults. An explicit ConfigPath must exist; probed files
// next to the binary are optional.
func (a *App) loadModel(ctx context.Context, baseDir string) (*config.Model, error) {
	path := a.config.ConfigPath
	if path == "" {
		for _, name := range configFileNames {
			candidate := filepath.Join(baseDir, name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path == "" {
		a.logger.Debug("No launcher config file found, using built-in defaults.")
		return config.Default(), nil
	}

	loader, ok := a.loaders[filepath.Ext(path)]
	if !ok {
		return nil, fmt.Errorf("unsupported launcher config format: %s", path)
	}
	overlay, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load launcher config: %w", err)
	}
	return config.Merge(config.Default(), overlay), nil
}
