package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
// The env tags are read with the MODFACTORY_ prefix.
type Config struct {
	Platform    string   `env:"PLATFORM"`
	TablePath   string   `env:"TABLE"`
	ModulesPath []string `env:"MODULES_PATH" envSeparator:","`

	LogFormat       string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	HealthcheckPort int    `env:"HEALTHCHECK_PORT"`

	// Command selection, set from the command line only.
	List          bool
	Serve         bool
	ClassName     string
	InterfaceName string
}

// EnvPrefix is prepended to every env tag of Config.
const EnvPrefix = "MODFACTORY_"

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck-port %d", cfg.HealthcheckPort)
	}
	if cfg.Serve && cfg.HealthcheckPort == 0 {
		return nil, errors.New("serve requires a healthcheck-port")
	}
	if !cfg.List && !cfg.Serve && (cfg.ClassName == "" || cfg.InterfaceName == "") {
		return nil, errors.New("both CLASS and INTERFACE are required")
	}

	cfg.ModulesPath = compact(cfg.ModulesPath)
	return &cfg, nil
}

func compact(paths []string) []string {
	var out []string
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
