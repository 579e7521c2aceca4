package hcl

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// GOOS and GOARCH are exposed to `enabled` expressions as `os` and `arch`.
	GOOS   string
	GOARCH string
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL table loader targeting the running platform.
func NewLoader() *Loader {
	return &Loader{GOOS: runtime.GOOS, GOARCH: runtime.GOARCH}
}

// fileRoot is the top-level schema of a table file.
type fileRoot struct {
	Fallback  string           `hcl:"fallback,optional"`
	Platforms []*platformBlock `hcl:"platform,block"`
}

type platformBlock struct {
	Name    string         `hcl:"name,label"`
	Modules []*moduleBlock `hcl:"module,block"`
}

type moduleBlock struct {
	Name    string `hcl:"name,label"`
	Role    string `hcl:"role,optional"`
	Enabled *bool  `hcl:"enabled,optional"`
}

// Load reads and translates the table file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Table, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL table loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, path, file)
}

// LoadBytes translates an in-memory table. filename is used in diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, filename string, src []byte) (*config.Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, filename, file)
}

func (l *Loader) decode(ctx context.Context, filename string, file *hcl.File) (*config.Table, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, l.evalContext(), &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	table, err := translateTable(&root)
	if err != nil {
		return nil, fmt.Errorf("failed to translate HCL file %s: %w", filename, err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("HCL file %s: %w", filename, err)
	}

	logger.Debug("HCL table loading complete.", "file", filename, "platforms", table.Keys(), "fallback", table.Fallback)
	return table, nil
}

// evalContext exposes the target platform to `enabled` expressions.
func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"os":   cty.StringVal(l.GOOS),
			"arch": cty.StringVal(l.GOARCH),
		},
	}
}
