package registry

import (
	"log/slog"
	"sort"
	"sync"
)

// Module is the interface that all compiled-in modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the built-in modules of a single application instance,
// keyed by module name.
type Registry struct {
	logger *slog.Logger

	mu      sync.RWMutex
	modules map[string]*Builtin
}

// New creates and initializes a new Registry instance, registering the
// given modules into it. It logs nowhere; see NewWithLogger.
func New(modules ...Module) *Registry {
	return NewWithLogger(nil, modules...)
}

// NewWithLogger is New with registration and constructor failures traced to
// logger at debug level. A nil logger discards.
func NewWithLogger(logger *slog.Logger, modules ...Module) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Registry{logger: logger, modules: make(map[string]*Builtin)}
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Module returns the built-in module registered under name, creating an
// empty one if needed.
func (r *Registry) Module(name string) *Builtin {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.modules[name]
	if !ok {
		b = newBuiltin(name, r.logger)
		r.modules[name] = b
	}
	return b
}

// Names returns the registered module names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (r *Registry) lookup(name string) (*Builtin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.modules[name]
	return b, ok
}
