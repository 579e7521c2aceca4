package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPlatform is returned when a table has no entry for a platform
	// and no usable fallback.
	ErrUnknownPlatform = errors.New("no module list for platform")
	// ErrInvalidTable wraps all table validation failures.
	ErrInvalidTable = errors.New("invalid module table")
)

// Validate checks the structural rules of the table: every platform lists at
// least one module, names are non-empty, roles never go backwards (mock,
// extension, core) and at least one core module closes the list. Duplicate
// names are allowed; they are searched as many times as they appear.
func (t *Table) Validate() error {
	var errs []string

	if len(t.Platforms) == 0 {
		errs = append(errs, "table declares no platforms")
	}
	if t.Fallback != "" {
		if _, ok := t.Platforms[t.Fallback]; !ok {
			errs = append(errs, fmt.Sprintf("fallback platform '%s' is not declared", t.Fallback))
		}
	}

	for _, key := range t.Keys() {
		p := t.Platforms[key]
		if p == nil {
			errs = append(errs, fmt.Sprintf("platform '%s': nil definition", key))
			continue
		}
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Sprintf("platform '%s': empty name", key))
		}
		if len(p.Entries) == 0 {
			errs = append(errs, fmt.Sprintf("platform '%s': no modules listed", key))
			continue
		}

		last := RoleMock
		hasCore := false
		for i, e := range p.Entries {
			if strings.TrimSpace(e.Name) == "" {
				errs = append(errs, fmt.Sprintf("platform '%s', module #%d: empty name", key, i))
			}
			if e.Role.rank() < 0 {
				errs = append(errs, fmt.Sprintf("platform '%s', module '%s': unknown role '%s'", key, e.Name, e.Role))
				continue
			}
			if e.Role.rank() < last.rank() {
				errs = append(errs, fmt.Sprintf("platform '%s', module '%s': role '%s' listed after '%s'", key, e.Name, e.Role, last))
			}
			last = e.Role
			if e.Role == RoleCore {
				hasCore = true
			}
		}
		if !hasCore {
			errs = append(errs, fmt.Sprintf("platform '%s': no core module listed", key))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalidTable, strings.Join(errs, "\n- "))
	}
	return nil
}
