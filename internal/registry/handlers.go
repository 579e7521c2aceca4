package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vk/modfactory/internal/factory"
)

// Constructor builds a new object for a registered class.
type Constructor func() any

// Class identifies a constructible class/interface pair.
type Class struct {
	Name      string
	Interface string
}

// String returns "Name/Interface".
func (c Class) String() string {
	return c.Name + "/" + c.Interface
}

// Builtin is a compiled-in module: a table of constructors keyed by
// class/interface pair. It implements factory.ModuleFactory.
type Builtin struct {
	name   string
	logger *slog.Logger

	mu      sync.RWMutex
	classes map[Class]Constructor
}

func newBuiltin(name string, logger *slog.Logger) *Builtin {
	return &Builtin{name: name, logger: logger, classes: make(map[Class]Constructor)}
}

// Name returns the module name.
func (b *Builtin) Name() string {
	return b.name
}

// RegisterClass adds a constructor for className implementing interfaceName.
// A class implementing several interfaces is registered once per interface.
func (b *Builtin) RegisterClass(className, interfaceName string, ctor Constructor) {
	if className == "" || interfaceName == "" {
		panic(fmt.Sprintf("module '%s': class and interface names must not be empty", b.name))
	}
	if ctor == nil {
		panic(fmt.Sprintf("module '%s': nil constructor for class '%s/%s'", b.name, className, interfaceName))
	}

	key := Class{Name: className, Interface: interfaceName}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.classes[key]; exists {
		panic(fmt.Sprintf("module '%s': class '%s' already registered", b.name, key))
	}
	b.logger.Debug("Registering class.", "module", b.name, "class", className, "interface", interfaceName)
	b.classes[key] = ctor
}

// AttemptCreate runs the constructor registered for the pair, or returns nil
// when there is none. A panicking constructor or a nil pointer result also
// yields nil.
func (b *Builtin) AttemptCreate(className, interfaceName string) (obj any) {
	b.mu.RLock()
	ctor, ok := b.classes[Class{Name: className, Interface: interfaceName}]
	b.mu.RUnlock()
	if !ok {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Debug("Constructor panicked.", "module", b.name, "class", className, "interface", interfaceName, "panic", r)
			obj = nil
		}
	}()
	return factory.Normalize(ctor())
}

// Classes returns the registered pairs, sorted by class then interface.
func (b *Builtin) Classes() []Class {
	b.mu.RLock()
	out := make([]Class, 0, len(b.classes))
	for c := range b.classes {
		out = append(out, c)
	}
	b.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Interface < out[j].Interface
	})
	return out
}
