// Package envspec models the environment handed to the delegate. The
// launcher never mutates its own process environment: it builds a fresh
// environ slice from the caller's environment plus a list of policy-tagged
// variables, and only the child ever sees the result.
package envspec

import (
	"fmt"
	"strings"
)

// Policy controls how a variable is applied against the base environment.
type Policy int

const (
	// PolicyAlways overwrites any caller-supplied value on every invocation.
	PolicyAlways Policy = iota
	// PolicyIfAbsent applies the value only when the variable is unset or
	// empty in the base environment.
	PolicyIfAbsent
)

// String returns the config-file spelling of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyAlways:
		return "always"
	case PolicyIfAbsent:
		return "if-absent"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts the config-file spelling into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "always":
		return PolicyAlways, nil
	case "if-absent":
		return PolicyIfAbsent, nil
	default:
		return 0, fmt.Errorf("invalid policy %q: must be 'always' or 'if-absent'", s)
	}
}

// Var is a single environment variable with its assignment policy.
type Var struct {
	Name   string
	Value  string
	Policy Policy
}

// Built-in variable names and values. The two built-ins carry different
// policies on purpose: module_dir is pinned on every run, while a caller's
// ard_product_array survives untouched.
const (
	ModuleDirName  = "module_dir"
	ModuleDirValue = "/g/data/up71/modules"

	ProductArrayName  = "ard_product_array"
	ProductArrayValue = `["LAMBERTIAN", "NBART", "NBAR"]`
)

// Defaults returns the built-in variables applied when no launcher config
// file overrides them.
func Defaults() []Var {
	return []Var{
		{Name: ModuleDirName, Value: ModuleDirValue, Policy: PolicyAlways},
		{Name: ProductArrayName, Value: ProductArrayValue, Policy: PolicyIfAbsent},
	}
}

// Lookup scans an environ slice in "key=value" form for name. The last
// entry wins, matching how the OS resolves duplicates.
func Lookup(environ []string, name string) (string, bool) {
	prefix := name + "="
	value := ""
	found := false
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			value = kv[len(prefix):]
			found = true
		}
	}
	return value, found
}

// Apply returns a new environ slice with vars applied to base in order.
// base is never modified. For PolicyIfAbsent, a variable that is set but
// empty counts as absent.
func Apply(base []string, vars []Var) []string {
	out := make([]string, len(base))
	copy(out, base)

	for _, v := range vars {
		if v.Policy == PolicyIfAbsent {
			if current, ok := Lookup(out, v.Name); ok && current != "" {
				continue
			}
		}
		out = set(out, v.Name, v.Value)
	}
	return out
}

// set replaces every existing entry for name with a single new one, or
// appends when the name is not present.
func set(environ []string, name, value string) []string {
	prefix := name + "="
	entry := prefix + value

	replaced := false
	out := environ[:0:0]
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			if !replaced {
				out = append(out, entry)
				replaced = true
			}
			continue
		}
		out = append(out, kv)
	}
	if !replaced {
		out = append(out, entry)
	}
	return out
}
