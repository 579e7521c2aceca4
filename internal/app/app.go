package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/loader"
	"github.com/vk/modfactory/internal/manager"
	"github.com/vk/modfactory/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx    context.Context
	outW   io.Writer
	logger *slog.Logger
	config *Config

	registry *registry.Registry
	table    *config.Table
	platform *config.Platform
	cache    *loader.Cache
	manager  *manager.Manager

	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger, registry and module cache.
// The built-in modules are used when no modules are given. A table that
// cannot be loaded or that has no entry for the platform is a fatal startup
// error and panics.
func NewApp(outW io.Writer, cfg *Config, tableLoader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	table := config.Default()
	if cfg.TablePath != "" {
		loaded, err := tableLoader.Load(ctx, cfg.TablePath)
		if err != nil {
			panic(fmt.Errorf("failed to load priority table: %w", err))
		}
		table = loaded
	}
	if err := table.Validate(); err != nil {
		panic(err)
	}

	goos := cfg.Platform
	if goos == "" {
		goos = runtime.GOOS
	}
	platform, err := table.Platform(goos)
	if err != nil {
		panic(err)
	}
	logger.Debug("Priority table loaded.", "platform", platform.Name, "requested", goos, "modules", platform.Names())

	if len(modules) == 0 {
		modules = builtinModules
	}
	reg := registry.NewWithLogger(logger, modules...)
	logger.Debug("Built-in modules registered.", "count", len(modules), "names", reg.Names())
	if missing := reg.Unresolved(platform); len(missing) > 0 {
		logger.Debug("Modules without a built-in implementation.", "names", missing)
	}

	var sources []loader.Source
	if len(cfg.ModulesPath) > 0 {
		plugins := &loader.PluginSource{Dirs: cfg.ModulesPath}
		if libs, err := plugins.Libraries(); err != nil {
			logger.Warn("Failed to list module libraries.", "dirs", cfg.ModulesPath, "error", err)
		} else {
			logger.Debug("Module libraries found.", "dirs", cfg.ModulesPath, "libraries", libs)
		}
		sources = append(sources, plugins)
	}
	sources = append(sources, reg)
	cache := loader.NewCache(sources...)

	return &App{
		ctx:      ctx,
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		table:    table,
		platform: platform,
		cache:    cache,
		manager:  manager.FromPlatform(ctx, platform, cache),
	}
}

// CreateObject delegates to the resource manager.
func (a *App) CreateObject(className, interfaceName string) any {
	return a.manager.CreateObject(className, interfaceName)
}

// Manager returns the application's resource manager.
func (a *App) Manager() *manager.Manager {
	return a.manager
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Platform returns the selected platform entry of the priority table.
func (a *App) Platform() *config.Platform {
	return a.platform
}

// Close stops the inspection server and releases every loaded module.
func (a *App) Close() error {
	err := a.closeHealthCheckServer()
	a.manager.Close()
	a.cache.Close()
	return err
}
