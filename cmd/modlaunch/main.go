package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardpipeline/modlaunch/internal/app"
	"github.com/ardpipeline/modlaunch/internal/cli"
)

// main is the entrypoint for the modlaunch wrapper.
func main() {
	// Use a minimal logger until the full one is configured. Logs go to
	// stderr; stdout belongs to the delegate.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stderr, os.Args[1:], os.Environ()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the launcher logic for easier testing and error
// handling. The delegate's exit code comes back as an ExitError so main
// can finish with exactly that code.
func run(logW io.Writer, args, environ []string) error {
	appConfig, err := cli.Parse(args, environ)
	if err != nil {
		return err
	}

	launcher := app.New(logW, appConfig)
	code, err := launcher.Run(context.Background())
	if err != nil {
		return err
	}
	if code != 0 {
		return &cli.ExitError{Code: code}
	}
	return nil
}
