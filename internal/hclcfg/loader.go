// Package hclcfg loads the launcher configuration from HCL files.
package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/ardpipeline/modlaunch/internal/config"
	"github.com/ardpipeline/modlaunch/internal/ctxlog"
	"github.com/ardpipeline/modlaunch/internal/envspec"
)

// launcherBlock is the HCL-specific schema of the optional `launcher` block.
type launcherBlock struct {
	Delegate string `hcl:"delegate,optional"`
}

// envBlock is the HCL-specific schema of an `env` block.
type envBlock struct {
	Name   string         `hcl:"name,label"`
	Value  hcl.Expression `hcl:"value"`
	Policy string         `hcl:"policy,optional"`
}

// fileSchema is the top-level structure of a launcher config file.
type fileSchema struct {
	Launcher *launcherBlock `hcl:"launcher,block"`
	Envs     []*envBlock    `hcl:"env,block"`
}

// Loader implements config.Loader for HCL syntax.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads an HCL launcher config file and translates it into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing launcher config.", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	model := &config.Model{}
	if raw.Launcher != nil {
		model.Delegate = raw.Launcher.Delegate
	}
	for _, block := range raw.Envs {
		v, err := l.translateEnv(block)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		model.Vars = append(model.Vars, v)
	}

	logger.Debug("Launcher config translated into unified model.", "env_count", len(model.Vars))
	return model, nil
}

// translateEnv converts an HCL env block into the agnostic model. String
// values pass through verbatim; any other value (a list of product names,
// for example) is serialized to its JSON form, which is what the delegate
// expects for structured variables.
func (l *Loader) translateEnv(block *envBlock) (envspec.Var, error) {
	val, diags := block.Value.Value(nil)
	if diags.HasErrors() {
		return envspec.Var{}, fmt.Errorf("env %q: %w", block.Name, diags)
	}

	var value string
	if val.Type() == cty.String {
		value = val.AsString()
	} else {
		encoded, err := ctyjson.Marshal(val, val.Type())
		if err != nil {
			return envspec.Var{}, fmt.Errorf("env %q: cannot encode value: %w", block.Name, err)
		}
		value = string(encoded)
	}

	policy := envspec.PolicyAlways
	if block.Policy != "" {
		parsed, err := envspec.ParsePolicy(block.Policy)
		if err != nil {
			return envspec.Var{}, fmt.Errorf("env %q: %w", block.Name, err)
		}
		policy = parsed
	}

	return envspec.Var{Name: block.Name, Value: value, Policy: policy}, nil
}
