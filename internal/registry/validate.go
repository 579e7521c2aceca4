package registry

import "github.com/vk/modfactory/internal/config"

// Unresolved returns the entries of p that no built-in module can serve.
// Such entries are only usable when a dynamic library of that name is
// installed; they are reported for diagnostics, not treated as errors.
func (r *Registry) Unresolved(p *config.Platform) []string {
	var out []string
	for _, e := range p.Entries {
		if _, ok := r.lookup(e.Name); ok {
			continue
		}
		if _, ok := r.lookup(config.LogicalName(e.Name)); ok {
			continue
		}
		out = append(out, e.Name)
	}
	return out
}
