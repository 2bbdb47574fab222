package git

import (
	"context"
	"fmt"
	"strings"
)

// StageAll stages all changes including untracked and deleted files
func (r *CommandRunner) StageAll(ctx context.Context) error {
	if _, err := r.Run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func (r *CommandRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUncommittedChanges reports whether the worktree has any change git status would show
func (r *CommandRunner) HasUncommittedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check worktree status: %w", err)
	}
	return output != "", nil
}
