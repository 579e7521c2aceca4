package factory

import "reflect"

// ModuleFactory is one loadable unit capable of constructing objects by name.
// Implementations must be safe for concurrent use and must not panic on
// unknown names.
type ModuleFactory interface {
	// AttemptCreate returns a new object of className implementing
	// interfaceName, or nil if this module cannot produce one. A nil
	// pointer (or other nil reference) is treated as nil by callers.
	AttemptCreate(className, interfaceName string) any
}

// Func adapts an ordinary function to the ModuleFactory interface.
type Func func(className, interfaceName string) any

// AttemptCreate calls f. A nil Func creates nothing.
func (f Func) AttemptCreate(className, interfaceName string) any {
	if f == nil {
		return nil
	}
	return Normalize(f(className, interfaceName))
}

// Normalize maps a nil pointer, map, slice, func, chan or interface stored in
// obj to an untyped nil, so that "created nothing" has a single form.
func Normalize(obj any) any {
	if obj == nil {
		return nil
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		if v.IsNil() {
			return nil
		}
	}
	return obj
}

// Nop is a ModuleFactory that never creates anything. It stands in for
// modules that could not be located or loaded.
var Nop ModuleFactory = nopFactory{}

type nopFactory struct{}

func (nopFactory) AttemptCreate(string, string) any { return nil }

// Handle pairs a module factory with the stable name it was resolved from.
type Handle struct {
	Name    string
	Factory ModuleFactory
}

// AttemptCreate delegates to the wrapped factory, treating a missing factory
// as Nop. A typed nil result counts as nothing created.
func (h Handle) AttemptCreate(className, interfaceName string) any {
	if h.Factory == nil {
		return nil
	}
	return Normalize(h.Factory.AttemptCreate(className, interfaceName))
}
