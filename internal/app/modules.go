package app

import (
	"github.com/vk/modfactory/internal/registry"
	"github.com/vk/modfactory/modules/env_vars"
	"github.com/vk/modfactory/modules/http_client"
	"github.com/vk/modfactory/modules/http_request"
	"github.com/vk/modfactory/modules/print"
	"github.com/vk/modfactory/modules/s3"
	"github.com/vk/modfactory/modules/socketio_client"
	"github.com/vk/modfactory/modules/socketio_request"
)

// builtinModules is the definitive list of all modules that are compiled
// into the modfactory binary.
var builtinModules = []registry.Module{
	&env_vars.Module{},
	&print.Module{},
	&http_client.Module{},
	&http_request.Module{},
	&s3.Module{},
	&socketio_client.Module{},
	&socketio_request.Module{},
}

// BuiltinModules returns a copy of the compiled-in module list, for callers
// that add their own modules next to it.
func BuiltinModules() []registry.Module {
	return append([]registry.Module(nil), builtinModules...)
}
