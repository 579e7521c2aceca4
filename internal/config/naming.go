package config

import "strings"

var librarySuffixes = []string{".so", ".dylib", ".dll"}

// LogicalName strips platform library decoration from a module name, so that
// "libmodfactory.extension.http.so", "libmodfactory.extension.http.dylib" and
// "modfactory.extension.http.dll" all map to "modfactory.extension.http".
// Undecorated names are returned unchanged.
func LogicalName(name string) string {
	for _, suffix := range librarySuffixes {
		base, ok := strings.CutSuffix(name, suffix)
		if !ok || base == "" {
			continue
		}
		if suffix != ".dll" {
			if trimmed, ok := strings.CutPrefix(base, "lib"); ok && trimmed != "" {
				base = trimmed
			}
		}
		return base
	}
	return name
}
