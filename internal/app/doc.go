// Package app wires the launcher together: it owns the configured logger,
// the launcher config model, and the linear run sequence that ends in the
// delegate invocation.
package app
