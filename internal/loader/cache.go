package loader

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/factory"
)

// Cache memoizes module resolution per name. It is safe for concurrent use.
type Cache struct {
	sources []Source

	mu      sync.Mutex
	entries map[string]*entry
}

// entry is one loaded module. once guards the load; refs counts holders.
type entry struct {
	once    sync.Once
	factory factory.ModuleFactory
	refs    int
}

// NewCache creates a cache that opens modules by trying sources in order.
// Nil sources are ignored.
func NewCache(sources ...Source) *Cache {
	out := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			out = append(out, s)
		}
	}
	return &Cache{sources: out, entries: make(map[string]*entry)}
}

// Acquire returns the module factory for name, loading it on first use.
// Concurrent first acquirers share a single load. A module that no source
// can open is represented by factory.Nop. Every Acquire must be matched by a
// Release.
func (c *Cache) Acquire(ctx context.Context, name string) factory.ModuleFactory {
	c.mu.Lock()
	e, ok := c.entries[name]
	if !ok {
		e = &entry{}
		c.entries[name] = e
	}
	e.refs++
	c.mu.Unlock()

	e.once.Do(func() {
		e.factory = c.open(ctx, name)
	})
	return e.factory
}

// open tries every source in order; the first that succeeds wins.
func (c *Cache) open(ctx context.Context, name string) factory.ModuleFactory {
	logger := ctxlog.FromContext(ctx)

	for _, s := range c.sources {
		f, err := openSource(ctx, s, name)
		if err != nil {
			logger.Debug("Module source could not open module.", "name", name, "source", fmt.Sprintf("%T", s), "reason", err)
			continue
		}
		if f == nil {
			continue
		}
		logger.Debug("Module loaded.", "name", name, "source", fmt.Sprintf("%T", s))
		return f
	}

	logger.Debug("Module unavailable, requests to it will create nothing.", "name", name)
	return factory.Nop
}

// openSource calls s.Open, turning a panic into an error. Plugin libraries
// run their init functions inside plugin.Open.
func openSource(ctx context.Context, s Source, name string) (f factory.ModuleFactory, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, fmt.Errorf("module source panicked: %v", r)
		}
	}()
	return s.Open(ctx, name)
}

// Release drops one reference to name. When the last reference goes the
// module is forgotten and a later Acquire loads it again.
func (c *Cache) Release(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[name]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(c.entries, name)
	}
}

// Refs returns the number of outstanding references to name.
func (c *Cache) Refs(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; ok {
		return e.refs
	}
	return 0
}

// Loaded returns the names currently held, in lexical order.
func (c *Cache) Loaded() []string {
	c.mu.Lock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	c.mu.Unlock()
	sort.Strings(names)
	return names
}

// Close forgets every loaded module regardless of outstanding references.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}
