package hcl

import (
	"fmt"

	"github.com/vk/modfactory/internal/config"
)

// translateTable converts the decoded HCL structures into the format-agnostic
// model. Module order is preserved exactly; disabled modules are dropped.
func translateTable(root *fileRoot) (*config.Table, error) {
	table := &config.Table{
		Fallback:  root.Fallback,
		Platforms: make(map[string]*config.Platform, len(root.Platforms)),
	}

	for _, pb := range root.Platforms {
		if _, exists := table.Platforms[pb.Name]; exists {
			return nil, fmt.Errorf("platform '%s' declared more than once", pb.Name)
		}
		p := &config.Platform{Name: pb.Name}
		for _, mb := range pb.Modules {
			if mb.Enabled != nil && !*mb.Enabled {
				continue
			}
			role, err := config.ParseRole(mb.Role)
			if err != nil {
				return nil, fmt.Errorf("platform '%s', module '%s': %w", pb.Name, mb.Name, err)
			}
			p.Entries = append(p.Entries, config.Entry{Name: mb.Name, Role: role})
		}
		table.Platforms[pb.Name] = p
	}

	return table, nil
}
