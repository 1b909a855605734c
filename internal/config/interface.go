package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader. A
// loader reads a single file and translates it into the format-agnostic
// model; it reports only what the file specifies, leaving defaults to the
// caller to merge in.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
