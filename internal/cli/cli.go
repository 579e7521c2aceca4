package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/modfactory/internal/app"
	"github.com/vk/modfactory/internal/config"
)

// Exit codes used by the modfactory binary.
const (
	ExitUsage      = 2
	ExitNotCreated = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments over the environment overlay. It
// returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var fromEnv app.Config
	if err := config.ParseEnvPrefixed(app.EnvPrefix, &fromEnv); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("modfactory", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
modfactory - create objects from a prioritized list of module factories.

Usage:
  modfactory [options] CLASS INTERFACE
  modfactory -list [options]
  modfactory -serve -healthcheck-port PORT [options]

Arguments:
  CLASS      Class name to create, e.g. EnvVars.
  INTERFACE  Interface the object must implement, e.g. IValueStore.

Every option can also be set with a MODFACTORY_* environment variable
(MODFACTORY_PLATFORM, MODFACTORY_TABLE, MODFACTORY_MODULES_PATH, ...).
Command-line flags take precedence.

Options:
`)
		flagSet.PrintDefaults()
	}

	platformFlag := flagSet.String("platform", fromEnv.Platform, "Platform entry of the priority table. Defaults to the running OS.")
	tableFlag := flagSet.String("table", fromEnv.TablePath, "Path to an HCL priority table. Defaults to the built-in table.")
	modulesPathFlag := flagSet.String("modules-path", strings.Join(fromEnv.ModulesPath, ","), "Comma-separated directories searched for module libraries.")
	healthPortFlag := flagSet.Int("healthcheck-port", fromEnv.HealthcheckPort, "Port for the HTTP inspection server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", fromEnv.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", fromEnv.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	listFlag := flagSet.Bool("list", false, "Print the module search order and exit.")
	serveFlag := flagSet.Bool("serve", false, "Serve the inspection endpoints until interrupted.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := app.Config{
		Platform:        *platformFlag,
		TablePath:       *tableFlag,
		ModulesPath:     strings.Split(*modulesPathFlag, ","),
		HealthcheckPort: *healthPortFlag,
		LogFormat:       *logFormatFlag,
		LogLevel:        *logLevelFlag,
		List:            *listFlag,
		Serve:           *serveFlag,
	}

	switch flagSet.NArg() {
	case 0:
		if !cfg.List && !cfg.Serve {
			slog.Debug("No class requested, printing usage and exiting.")
			flagSet.Usage()
			return nil, true, nil
		}
	case 2:
		cfg.ClassName, cfg.InterfaceName = flagSet.Arg(0), flagSet.Arg(1)
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("expected CLASS and INTERFACE, got %d argument(s)", flagSet.NArg())}
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}
