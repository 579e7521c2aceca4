package config

import "context"

// Loader is the interface for a format-specific priority table loader.
type Loader interface {
	// Load reads the table stored at path and translates it into the
	// format-agnostic model. The returned table has already been validated.
	Load(ctx context.Context, path string) (*Table, error)
}
