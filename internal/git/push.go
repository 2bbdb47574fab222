package git

import (
	"context"

	autoerrors "autoupdater.dev/autoupdater/internal/errors"
)

// Push pushes branch to remote without force
func (r *CommandRunner) Push(ctx context.Context, remote, branch string) error {
	if _, err := r.Run(ctx, "push", remote, branch); err != nil {
		return autoerrors.NewPushError(remote, branch, err)
	}
	return nil
}
