// Package http_client provides a shareable HTTP client class for the HTTP
// extension module.
package http_client

import (
	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/registry"
)

// Class names registered by this package.
const (
	ClassName     = "HttpClient"
	InterfaceName = "IHttpClient"
)

// Module implements the registry.Module interface. It's the main entrypoint
// for the http_client module.
type Module struct{}

// Register adds the HttpClient class to the HTTP extension module.
func (m *Module) Register(r *registry.Registry) {
	r.Module(config.HTTPExtension).RegisterClass(ClassName, InterfaceName, func() any {
		return New()
	})
}
