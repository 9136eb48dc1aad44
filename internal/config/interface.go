package config

import "context"

// Loader is the interface for a format-specific layout loader.
type Loader interface {
	// Load reads every layout file found under paths and merges them into
	// one Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
