// Package manager implements the resource manager: an immutable, ordered
// list of module factories and a single creation operation that walks it.
//
// # Search order
//
// The list is fixed when the Manager is built and is never reordered or
// deduplicated. CreateObject asks each module in turn and returns the first
// object produced; modules after the winner are not consulted. Because mock
// modules head every platform list, a mock that can build a class always
// supersedes the production implementation without any change at call sites.
//
// # Failure
//
// There is no error path. An unsupported class, an unknown interface and a
// module that failed to load all produce nil. Callers decide whether that is
// fatal.
//
// # Concurrency
//
// A Manager is safe for concurrent use once constructed: CreateObject only
// reads the list. Module factories must themselves be safe for concurrent
// AttemptCreate calls. There is no locking, queuing or timeout on this path.
package manager
