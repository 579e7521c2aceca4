// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ListFiles returns the regular files directly inside dir whose names end
// with one of extensions, sorted by name. Subdirectories are not searched.
func ListFiles(dir string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		for _, ext := range extensions {
			if ext != "" && strings.HasSuffix(e.Name(), ext) {
				files = append(files, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	return files, nil
}

// FindFile returns the path of the first regular file called name that sits
// directly inside one of dirs, searching dirs in order. Names containing a
// path separator are rejected so a module name can never escape the search
// directories.
func FindFile(dirs []string, name string) (string, bool) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return path, true
	}
	return "", false
}
