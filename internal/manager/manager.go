package manager

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/factory"
)

// Acquirer resolves module names into shared module factories.
// loader.Cache implements it.
type Acquirer interface {
	Acquire(ctx context.Context, name string) factory.ModuleFactory
	Release(name string)
}

// Manager owns the ordered module factory list.
type Manager struct {
	handles []factory.Handle
	logger  *slog.Logger

	acq       Acquirer
	closeOnce sync.Once
}

// New builds a Manager over an explicit, ordered list of handles. The slice
// is copied. Handles without a factory keep their slot and create nothing.
func New(handles ...factory.Handle) *Manager {
	out := make([]factory.Handle, len(handles))
	for i, h := range handles {
		if h.Factory == nil {
			h.Factory = factory.Nop
		}
		out[i] = h
	}
	return &Manager{handles: out, logger: slog.New(slog.DiscardHandler)}
}

// FromPlatform builds a Manager by acquiring every module of p in table
// order. The modules are released by Close.
func FromPlatform(ctx context.Context, p *config.Platform, acq Acquirer) *Manager {
	logger := ctxlog.FromContext(ctx)

	handles := make([]factory.Handle, 0, len(p.Entries))
	for _, e := range p.Entries {
		handles = append(handles, factory.Handle{
			Name:    e.Name,
			Factory: acq.Acquire(ctx, e.Name),
		})
	}
	logger.Debug("Resource manager built.", "platform", p.Name, "modules", p.Names())

	m := New(handles...)
	m.acq = acq
	m.logger = logger
	return m
}

// CreateObject asks each module, in order, to create className implementing
// interfaceName and returns the first object produced, or nil if none can.
func (m *Manager) CreateObject(className, interfaceName string) any {
	obj, _, _ := m.Resolve(className, interfaceName)
	return obj
}

// Resolve is CreateObject that also reports which module produced the
// object. module is empty and ok false when nothing was created.
func (m *Manager) Resolve(className, interfaceName string) (obj any, module string, ok bool) {
	for _, h := range m.handles {
		if obj := h.AttemptCreate(className, interfaceName); obj != nil {
			m.logger.Debug("Object created.", "class", className, "interface", interfaceName, "module", h.Name)
			return obj, h.Name, true
		}
	}
	return nil, "", false
}

// Modules returns the module names in search order.
func (m *Manager) Modules() []string {
	names := make([]string, len(m.handles))
	for i, h := range m.handles {
		names[i] = h.Name
	}
	return names
}

// Len returns the number of modules searched.
func (m *Manager) Len() int {
	return len(m.handles)
}

// Close releases the modules acquired by FromPlatform. It is safe to call
// more than once; only the first call has an effect. The search list itself
// is left intact so in-flight CreateObject calls stay valid.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		if m.acq == nil {
			return
		}
		for _, h := range m.handles {
			m.acq.Release(h.Name)
		}
	})
}
