package config

import (
	"fmt"
	"sort"
)

// Role classifies a module entry by its place in the search order.
type Role string

const (
	// RoleMock marks test substitution modules, always searched first.
	RoleMock Role = "mock"
	// RoleExtension marks production extension modules.
	RoleExtension Role = "extension"
	// RoleCore marks the core production module(s), searched last.
	RoleCore Role = "core"
)

// rank orders roles; entries of a platform must have non-decreasing ranks.
func (r Role) rank() int {
	switch r {
	case RoleMock:
		return 0
	case RoleExtension:
		return 1
	case RoleCore:
		return 2
	default:
		return -1
	}
}

// ParseRole converts a string into a Role. An empty string means
// RoleExtension.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleExtension, nil
	}
	r := Role(s)
	if r.rank() < 0 {
		return "", fmt.Errorf("unknown module role %q: must be 'mock', 'extension' or 'core'", s)
	}
	return r, nil
}

// Entry is a single module reference in a platform's search order.
type Entry struct {
	Name string
	Role Role
}

// Platform is the ordered module list used on one platform.
type Platform struct {
	Name    string
	Entries []Entry
}

// Names returns the module names in search order.
func (p *Platform) Names() []string {
	names := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		names[i] = e.Name
	}
	return names
}

// Table is the unified representation of the module priority table.
type Table struct {
	Platforms map[string]*Platform
	// Fallback is the platform key used when the requested one is missing.
	Fallback string
}

// Platform returns the module list for goos, falling back to t.Fallback.
func (t *Table) Platform(goos string) (*Platform, error) {
	if p, ok := t.Platforms[goos]; ok {
		return p, nil
	}
	if t.Fallback != "" {
		if p, ok := t.Platforms[t.Fallback]; ok {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, goos)
}

// Keys returns the platform keys in lexical order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.Platforms))
	for k := range t.Platforms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
