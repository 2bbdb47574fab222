// Package script runs the external data-refresh process.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Runner invokes an interpreter on a script file inside a working directory
type Runner struct {
	dir         string
	interpreter string
	script      string
	stdout      io.Writer
	stderr      io.Writer
}

// NewRunner creates a Runner. The child process output is streamed to stdout and stderr.
func NewRunner(dir, interpreter, script string, stdout, stderr io.Writer) *Runner {
	return &Runner{
		dir:         dir,
		interpreter: interpreter,
		script:      script,
		stdout:      stdout,
		stderr:      stderr,
	}
}

// String returns the command line as it would be typed in a shell
func (r *Runner) String() string {
	return r.interpreter + " " + r.script
}

// Run starts the script and blocks until it exits.
// A script that runs and exits non-zero returns its exit code and a nil error.
// A script killed by a signal returns -1 and a nil error.
// A script that cannot be started returns -1 and the start error.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.interpreter, r.script)
	cmd.Dir = r.dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctx.Err() != nil {
			return exitErr.ExitCode(), ctx.Err()
		}
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to start %s: %w", r, err)
}
