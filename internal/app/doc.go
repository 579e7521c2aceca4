// Package app wires the resource manager together: it builds the logger,
// loads the priority table, registers the built-in modules, opens the module
// cache and serves the inspection endpoints. It is decoupled from any
// specific entrypoint like a CLI.
package app
