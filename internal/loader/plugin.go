package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"plugin"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/factory"
	"github.com/vk/modfactory/internal/fsutil"
)

// DefaultSymbol is the exported plugin symbol looked up by PluginSource.
const DefaultSymbol = "AttemptCreate"

var (
	// ErrLibraryNotFound is returned when no library file matches the name.
	ErrLibraryNotFound = errors.New("module library not found")
	// ErrBadSymbol is returned when a plugin's factory symbol has the wrong type.
	ErrBadSymbol = errors.New("module library exports an unusable factory symbol")
)

// PluginSource opens modules built with `go build -buildmode=plugin`. Only
// decorated library names (".so", ".dylib", ".dll") are considered; logical
// names such as the core module's are left to other sources.
//
// A plugin exports either a function
//
//	func AttemptCreate(className, interfaceName string) any
//
// or a variable of a type implementing factory.ModuleFactory under Symbol.
type PluginSource struct {
	Dirs   []string
	Symbol string
}

var _ Source = (*PluginSource)(nil)

// Open locates name in the search directories and binds its factory symbol.
func (s *PluginSource) Open(ctx context.Context, name string) (factory.ModuleFactory, error) {
	logger := ctxlog.FromContext(ctx)

	if config.LogicalName(name) == name {
		return nil, fmt.Errorf("%w: %s is not a library name", ErrLibraryNotFound, name)
	}
	path, ok := fsutil.FindFile(s.Dirs, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
	}

	logger.Debug("Opening module library.", "name", name, "path", path)
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open module library %s: %w", path, err)
	}

	symbol := s.Symbol
	if symbol == "" {
		symbol = DefaultSymbol
	}
	sym, err := p.Lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("module library %s: %w", path, err)
	}
	return bindSymbol(sym, path, symbol)
}

// bindSymbol converts a looked-up plugin symbol into a module factory.
// Variables are looked up as pointers to the variable.
func bindSymbol(sym any, path, symbol string) (factory.ModuleFactory, error) {
	switch v := sym.(type) {
	case func(string, string) any:
		return factory.Func(v), nil
	case *func(string, string) any:
		if v != nil && *v != nil {
			return factory.Func(*v), nil
		}
	case *factory.ModuleFactory:
		if v != nil && *v != nil {
			return *v, nil
		}
	case factory.ModuleFactory:
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s in %s has type %T", ErrBadSymbol, symbol, path, sym)
}

// Libraries lists the library files installed in the search directories.
func (s *PluginSource) Libraries() ([]string, error) {
	var out []string
	for _, dir := range s.Dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		files, err := fsutil.ListFiles(dir, ".so", ".dylib", ".dll")
		if err != nil {
			return nil, fmt.Errorf("failed to list module libraries in %s: %w", dir, err)
		}
		out = append(out, files...)
	}
	return out, nil
}
