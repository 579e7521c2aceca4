package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modfactory/internal/cli"
)

func TestParse_ClassAndInterface(t *testing.T) {
	// --- Arrange ---
	args := []string{"-platform", "darwin", "-modules-path", "/opt/a,/opt/b", "-log-level", "DEBUG", "EnvVars", "IValueStore"}
	out := &bytes.Buffer{}

	// --- Act ---
	cfg, shouldExit, err := cli.Parse(args, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "darwin", cfg.Platform)
	assert.Equal(t, []string{"/opt/a", "/opt/b"}, cfg.ModulesPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "EnvVars", cfg.ClassName)
	assert.Equal(t, "IValueStore", cfg.InterfaceName)
}

func TestParse_EnvironmentOverlay(t *testing.T) {
	t.Setenv("MODFACTORY_PLATFORM", "windows")
	t.Setenv("MODFACTORY_LOG_FORMAT", "json")
	t.Setenv("MODFACTORY_MODULES_PATH", "/env/a")

	cfg, _, err := cli.Parse([]string{"-platform", "linux", "-list"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "linux", cfg.Platform, "flag takes precedence")
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"/env/a"}, cfg.ModulesPath)
	assert.True(t, cfg.List)
}

func TestParse_NoArgumentsPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := cli.Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"-nope"}, want: "flag provided but not defined"},
		{name: "one argument", args: []string{"EnvVars"}, want: "expected CLASS and INTERFACE"},
		{name: "bad format", args: []string{"-log-format", "xml", "A", "B"}, want: "log-format"},
		{name: "serve without port", args: []string{"-serve"}, want: "serve requires"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := cli.Parse(tc.args, &bytes.Buffer{})

			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, cli.ExitUsage, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.want)
		})
	}
}
