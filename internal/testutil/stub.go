package testutil

import (
	"sync"
	"sync/atomic"

	"github.com/vk/modfactory/internal/registry"
)

// StubFactory is an instrumented module factory. It returns the token
// configured for a class/interface pair and counts every call it receives.
type StubFactory struct {
	Name string

	mu      sync.RWMutex
	objects map[registry.Class]any
	calls   atomic.Int64
}

// NewStubFactory creates an empty stub named name.
func NewStubFactory(name string) *StubFactory {
	return &StubFactory{Name: name, objects: make(map[registry.Class]any)}
}

// Supports makes the stub return obj for className/interfaceName.
func (s *StubFactory) Supports(className, interfaceName string, obj any) *StubFactory {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[registry.Class{Name: className, Interface: interfaceName}] = obj
	return s
}

// AttemptCreate implements factory.ModuleFactory.
func (s *StubFactory) AttemptCreate(className, interfaceName string) any {
	s.calls.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[registry.Class{Name: className, Interface: interfaceName}]
}

// Calls returns how many times AttemptCreate was invoked.
func (s *StubFactory) Calls() int {
	return int(s.calls.Load())
}
