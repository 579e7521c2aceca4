package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/modfactory/internal/app"
	"github.com/vk/modfactory/internal/cli"
	"github.com/vk/modfactory/internal/hcl"
)

// main is the entrypoint for the modfactory application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical startup errors such as an unreadable table
	// or a duplicate class registration.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	modfactoryApp := app.NewApp(outW, appConfig, hcl.NewLoader())
	defer func() {
		if closeErr := modfactoryApp.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := modfactoryApp.Run(ctx); err != nil {
		if errors.Is(err, app.ErrNotCreated) {
			return &cli.ExitError{Code: cli.ExitNotCreated, Message: err.Error()}
		}
		return err
	}
	return nil
}
