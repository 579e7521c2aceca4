package loader

import (
	"context"

	"github.com/vk/modfactory/internal/factory"
)

// Source opens the module called name.
type Source interface {
	Open(ctx context.Context, name string) (factory.ModuleFactory, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, name string) (factory.ModuleFactory, error)

// Open calls f.
func (f SourceFunc) Open(ctx context.Context, name string) (factory.ModuleFactory, error) {
	return f(ctx, name)
}
