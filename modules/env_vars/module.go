// Package env_vars provides a read-only key/value store backed by the process
// environment.
package env_vars

import (
	"os"
	"sort"
	"strings"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/registry"
)

// Class names registered by this package.
const (
	ClassName     = "EnvVars"
	InterfaceName = "IValueStore"
)

// ValueStore is the interface exposed under IValueStore.
type ValueStore interface {
	Get(key string) (string, bool)
	Keys() []string
}

// Store is a snapshot of the environment taken when it was created.
type Store struct {
	values map[string]string
}

var _ ValueStore = (*Store)(nil)

// New snapshots os.Environ into a Store.
func New() *Store {
	return FromEnviron(os.Environ())
}

// FromEnviron builds a Store from "KEY=value" pairs. Malformed pairs are
// skipped.
func FromEnviron(environ []string) *Store {
	values := make(map[string]string, len(environ))
	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			values[pair[0]] = pair[1]
		}
	}
	return &Store{values: values}
}

// Get returns the value for key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns all keys in lexical order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the EnvVars class to the core module.
func (m *Module) Register(r *registry.Registry) {
	r.Module(config.CoreModule).RegisterClass(ClassName, InterfaceName, func() any {
		return New()
	})
}
