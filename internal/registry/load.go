package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/factory"
)

// ErrModuleNotFound is returned by Open when no built-in module matches.
var ErrModuleNotFound = errors.New("built-in module not found")

// Open resolves name to a built-in module, trying the exact name first and
// then its logical name. It makes Registry usable as a module source.
func (r *Registry) Open(ctx context.Context, name string) (factory.ModuleFactory, error) {
	logger := ctxlog.FromContext(ctx)

	if b, ok := r.lookup(name); ok {
		logger.Debug("Resolved built-in module.", "name", name)
		return b, nil
	}
	if logical := config.LogicalName(name); logical != name {
		if b, ok := r.lookup(logical); ok {
			logger.Debug("Resolved built-in module by logical name.", "name", name, "logical", logical)
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
}
