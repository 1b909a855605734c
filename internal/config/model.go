package config

import (
	"github.com/ardpipeline/modlaunch/internal/envspec"
)

// DefaultDelegateName is the executable the launcher hands off to when no
// config file overrides it.
const DefaultDelegateName = "create-module"

// Model is the unified, format-agnostic representation of the launcher
// configuration: which delegate to run and which environment variables to
// prepare for it.
type Model struct {
	Delegate string
	Vars     []envspec.Var
}

// Default returns the built-in model used when no config file is present.
func Default() *Model {
	return &Model{
		Delegate: DefaultDelegateName,
		Vars:     envspec.Defaults(),
	}
}

// Merge layers overlay on top of base and returns a new model. An overlay
// entry whose name matches an existing variable replaces it, policy
// included; other entries append in file order. base is never modified.
func Merge(base, overlay *Model) *Model {
	out := &Model{
		Delegate: base.Delegate,
		Vars:     append([]envspec.Var(nil), base.Vars...),
	}
	if overlay == nil {
		return out
	}
	if overlay.Delegate != "" {
		out.Delegate = overlay.Delegate
	}
	for _, v := range overlay.Vars {
		out.Vars = replaceOrAppend(out.Vars, v)
	}
	return out
}

func replaceOrAppend(vars []envspec.Var, v envspec.Var) []envspec.Var {
	for i := range vars {
		if vars[i].Name == v.Name {
			vars[i] = v
			return vars
		}
	}
	return append(vars, v)
}
