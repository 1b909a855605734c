package delegate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/ardpipeline/modlaunch/internal/ctxlog"
)

// Runner spawns the delegate as a child process with its stdio wired to
// the given streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner attached to the launcher's own stdio, which
// makes the child indistinguishable from an exec-style handoff to the
// caller watching the terminal.
func NewRunner() *Runner {
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the delegate at path with the given arguments and environment
// and blocks until it exits. Interrupt and terminate signals received while
// the child runs are forwarded to it. The child's exit code is the result,
// whatever it is; only a failure to start or to wait is an error.
func (r *Runner) Run(ctx context.Context, path string, args, env []string) (int, error) {
	logger := ctxlog.FromContext(ctx)

	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start delegate %s: %w", path, err)
	}
	logger.Debug("Delegate started.", "path", path, "pid", cmd.Process.Pid)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				logger.Debug("Forwarding signal to delegate.", "signal", sig)
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	waitErr := cmd.Wait()
	signal.Stop(sigCh)
	close(done)

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			logger.Debug("Delegate exited.", "exit_code", exitErr.ExitCode())
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("failed waiting for delegate: %w", waitErr)
	}

	logger.Debug("Delegate exited.", "exit_code", 0)
	return 0, nil
}
