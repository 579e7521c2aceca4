// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses a module priority table file, evaluates the optional
// per-module `enabled` expressions against the running platform, and
// translates the result into the format-agnostic config.Table.
package hcl
