// Package config defines the format-agnostic launcher configuration model
// and the Loader interface implemented by each supported file format. It
// knows nothing about HCL or YAML syntax.
package config
