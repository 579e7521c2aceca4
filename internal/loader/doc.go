// Package loader resolves module names into module factories.
//
// A Source knows how to open one kind of module: the built-in registry opens
// compiled-in modules, PluginSource opens Go plugins (shared libraries) from
// a list of search directories. The Cache sits in front of an ordered list of
// sources and gives the resource manager its module handles: each distinct
// name is loaded at most once and shared by every holder until the last
// Release.
//
// Loading never fails from the caller's point of view. A name that no source
// can open becomes factory.Nop, so "module absent" and "module present but
// unable to build the class" are indistinguishable downstream.
package loader
