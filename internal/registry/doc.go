// Package registry provides the in-process half of the module system.
//
// Compiled-in modules implement Module and, when registered, add their
// classes to a named Builtin module. Each Builtin is a factory.ModuleFactory
// that answers AttemptCreate from its class table, and the Registry itself is
// a module source: it opens a Builtin by exact name or by logical name, so a
// priority table entry such as "libmodfactory.extension.http.so" resolves to
// the module registered as "modfactory.extension.http" when no dynamic
// library of that name is installed.
//
// Registration happens during startup. Duplicate registrations are programmer
// errors and panic.
package registry
