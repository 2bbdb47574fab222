// Package errors provides sentinel errors and custom error types for auto-updater.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three terminal failure kinds
var (
	// ErrWorkDirMissing indicates that the working directory does not exist
	ErrWorkDirMissing = errors.New("working directory unavailable")

	// ErrScriptFailed indicates that the data-refresh script exited non-zero or could not start
	ErrScriptFailed = errors.New("script failed")

	// ErrPushFailed indicates that pushing to the remote failed
	ErrPushFailed = errors.New("push failed")
)

// WorkDirError represents an error when the working directory cannot be used
type WorkDirError struct {
	Dir string
	Err error
}

func (e *WorkDirError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("working directory %s unavailable: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("working directory %s unavailable", e.Dir)
}

func (e *WorkDirError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrWorkDirMissing
func (e *WorkDirError) Is(target error) bool {
	return target == ErrWorkDirMissing
}

// NewWorkDirError creates a new WorkDirError
func NewWorkDirError(dir string, err error) *WorkDirError {
	return &WorkDirError{Dir: dir, Err: err}
}

// ScriptError represents a failed run of the data-refresh script.
// Err is set when the process could not be started. ExitCode is -1 when it
// could not be started or was killed by a signal.
type ScriptError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *ScriptError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s could not be started: %v", e.Command, e.Err)
	case e.ExitCode < 0:
		return fmt.Sprintf("%s was terminated by a signal", e.Command)
	default:
		return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	}
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrScriptFailed
func (e *ScriptError) Is(target error) bool {
	return target == ErrScriptFailed
}

// NewScriptError creates a new ScriptError
func NewScriptError(command string, exitCode int, err error) *ScriptError {
	return &ScriptError{
		Command:  command,
		ExitCode: exitCode,
		Err:      err,
	}
}

// PushError represents a failed push to a remote branch
type PushError struct {
	Remote string
	Branch string
	Err    error
}

func (e *PushError) Error() string {
	return fmt.Sprintf("failed to push %s/%s: %v", e.Remote, e.Branch, e.Err)
}

func (e *PushError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrPushFailed
func (e *PushError) Is(target error) bool {
	return target == ErrPushFailed
}

// NewPushError creates a new PushError
func NewPushError(remote, branch string, err error) *PushError {
	return &PushError{
		Remote: remote,
		Branch: branch,
		Err:    err,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
