package testutil

import (
	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/registry"
)

// MockModule registers test doubles into the mock module slot, so they take
// precedence over every production module on any platform.
type MockModule struct {
	// Classes maps "Class/Interface" pairs to the object returned for them.
	Classes map[registry.Class]any
}

// Register implements the registry.Module interface.
func (m *MockModule) Register(r *registry.Registry) {
	mod := r.Module(config.MockModule)
	for class, obj := range m.Classes {
		obj := obj
		mod.RegisterClass(class.Name, class.Interface, func() any { return obj })
	}
}
