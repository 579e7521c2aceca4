package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/modfactory/internal/app"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	valid := app.Config{LogFormat: "TEXT", LogLevel: "Debug", ClassName: "EnvVars", InterfaceName: "IValueStore"}

	testCases := []struct {
		name    string
		mutate  func(c *app.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *app.Config) {}},
		{name: "bad format", mutate: func(c *app.Config) { c.LogFormat = "xml" }, wantErr: "log-format"},
		{name: "bad level", mutate: func(c *app.Config) { c.LogLevel = "trace" }, wantErr: "log-level"},
		{name: "bad port", mutate: func(c *app.Config) { c.HealthcheckPort = 70000 }, wantErr: "healthcheck-port"},
		{name: "serve without port", mutate: func(c *app.Config) { c.Serve = true }, wantErr: "serve requires"},
		{name: "missing interface", mutate: func(c *app.Config) { c.InterfaceName = "" }, wantErr: "CLASS and INTERFACE"},
		{name: "list needs no class", mutate: func(c *app.Config) { c.List = true; c.ClassName = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tc.mutate(&cfg)

			got, err := app.NewConfig(cfg)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "text", got.LogFormat)
			require.Equal(t, "debug", got.LogLevel)
		})
	}
}

func TestNewConfig_CompactsModulesPath(t *testing.T) {
	t.Parallel()

	got, err := app.NewConfig(app.Config{
		LogFormat:   "json",
		LogLevel:    "info",
		List:        true,
		ModulesPath: []string{" /opt/a ", "", "/opt/b"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/a", "/opt/b"}, got.ModulesPath)
}
