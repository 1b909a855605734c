// Package yamlcfg loads the launcher configuration from YAML files. It
// produces the same format-agnostic model as the HCL loader; the app picks
// a loader by file extension.
package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ardpipeline/modlaunch/internal/config"
	"github.com/ardpipeline/modlaunch/internal/ctxlog"
	"github.com/ardpipeline/modlaunch/internal/envspec"
)

// fileSchema is the YAML-specific structure of a launcher config file.
type fileSchema struct {
	Delegate string     `yaml:"delegate"`
	Env      []envEntry `yaml:"env"`
}

// envEntry is the YAML-specific schema of a single env entry.
type envEntry struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Policy string `yaml:"policy"`
}

// Loader implements config.Loader for YAML syntax.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a YAML launcher config file and translates it into the
// format-agnostic model. Unknown fields are rejected so typos surface as
// errors instead of silently ignored settings.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing launcher config.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var raw fileSchema
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	model := &config.Model{Delegate: raw.Delegate}
	for _, entry := range raw.Env {
		if entry.Name == "" {
			return nil, fmt.Errorf("%s: env entry is missing a name", path)
		}
		policy := envspec.PolicyAlways
		if entry.Policy != "" {
			parsed, err := envspec.ParsePolicy(entry.Policy)
			if err != nil {
				return nil, fmt.Errorf("%s: env %q: %w", path, entry.Name, err)
			}
			policy = parsed
		}
		model.Vars = append(model.Vars, envspec.Var{Name: entry.Name, Value: entry.Value, Policy: policy})
	}

	logger.Debug("Launcher config translated into unified model.", "env_count", len(model.Vars))
	return model, nil
}
