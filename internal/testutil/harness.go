package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/modfactory/internal/app"
	"github.com/vk/modfactory/internal/hcl"
	"github.com/vk/modfactory/internal/registry"
)

// HarnessResult holds the outcomes of an end-to-end app run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunApp provides a standardized harness for running the app with a default
// background context. See RunAppWithContext.
func RunApp(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, cfg, modules...)
}

// RunAppWithContext writes files into a temporary directory, points relative
// TablePath and ModulesPath entries at it, builds the app with debug logging
// and runs it. The app is closed when the test ends.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	if cfg.TablePath != "" && !filepath.IsAbs(cfg.TablePath) {
		cfg.TablePath = filepath.Join(tmpDir, cfg.TablePath)
	}
	cfg.ModulesPath = append([]string(nil), cfg.ModulesPath...)
	for i, dir := range cfg.ModulesPath {
		if !filepath.IsAbs(dir) {
			cfg.ModulesPath[i] = filepath.Join(tmpDir, dir)
		}
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogLevel = "debug"

	out := &SafeBuffer{}
	testApp := app.NewApp(out, &cfg, hcl.NewLoader(), modules...)
	t.Cleanup(func() {
		require.NoError(t, testApp.Close())
		if os.Getenv("MODFACTORY_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), out.String())
		}
	})

	err := testApp.Run(ctx)
	return &HarnessResult{Output: out.String(), Err: err, App: testApp}
}
