package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	autoerrors "autoupdater.dev/autoupdater/internal/errors"
)

// Commit creates a commit with the given message and returns git's summary output.
// The commit is non-interactive: no editor is opened.
func (r *CommandRunner) Commit(ctx context.Context, message string) (string, error) {
	output, err := r.Run(ctx, "commit", "-m", message)
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return output, nil
}

// IsNothingToCommit reports whether err is git refusing an empty commit
func IsNothingToCommit(err error) bool {
	var cmdErr *autoerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	out := cmdErr.Stdout + cmdErr.Stderr
	return strings.Contains(out, "nothing to commit") || strings.Contains(out, "nothing added to commit")
}
