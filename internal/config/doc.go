// Package config defines the format-agnostic model of the module priority
// table, along with the Loader interface for reading it from various sources.
//
// A Table maps platform keys (GOOS values) to an ordered list of module
// names. The order is the search order of the resource manager and is part of
// its observable behavior: mock modules first, extensions next, the core
// module last. Concrete loaders, such as for HCL, live in separate packages.
package config
