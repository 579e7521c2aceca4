package testutil

import "github.com/vk/modfactory/internal/registry"

// SimpleModule is a test helper for easily creating a compiled-in module
// that registers a single class.
type SimpleModule struct {
	ModuleName string
	ClassName  string
	Interface  string
	New        registry.Constructor
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.ModuleName != "" && m.ClassName != "" && m.Interface != "" && m.New != nil {
		r.Module(m.ModuleName).RegisterClass(m.ClassName, m.Interface, m.New)
	}
}
