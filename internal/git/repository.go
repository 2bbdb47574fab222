package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrRemoteNotFound indicates that the named remote is not configured
var ErrRemoteNotFound = errors.New("remote not found")

// Repository wraps a go-git repository for read-only inspection
type Repository struct {
	repo *gogit.Repository
	path string
}

// OpenRepository opens the git repository rooted at path.
// Parent directories are not searched: the working directory itself must be the repository.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpen(absPath)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	return &Repository{repo: repo, path: absPath}, nil
}

// Path returns the absolute path the repository was opened at
func (r *Repository) Path() string {
	return r.path
}

// RemoteURLs returns the configured URLs of a remote
func (r *Repository) RemoteURLs(name string) ([]string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRemoteNotFound, name)
		}
		return nil, fmt.Errorf("failed to read remote %s: %w", name, err)
	}
	return remote.Config().URLs, nil
}

// HasBranch reports whether a local branch exists
func (r *Repository) HasBranch(name string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read branch %s: %w", name, err)
	}
	return true, nil
}

// CurrentBranch returns the branch HEAD points at
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Name().Short(), nil
}

// BranchCommitMessage returns the subject line of the tip commit of a branch
func (r *Repository) BranchCommitMessage(branch string) (string, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return "", fmt.Errorf("failed to resolve branch %s: %w", branch, err)
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", ref.Hash(), err)
	}
	subject, _, _ := strings.Cut(commit.Message, "\n")
	return subject, nil
}

// CommitCount returns the number of commits reachable from the tip of branch
func (r *Repository) CommitCount(branch string) (int, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve branch %s: %w", branch, err)
	}
	iter, err := r.repo.Log(&gogit.LogOptions{From: ref.Hash()})
	if err != nil {
		return 0, fmt.Errorf("failed to walk history of %s: %w", branch, err)
	}
	defer iter.Close()

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk history of %s: %w", branch, err)
	}
	return count, nil
}
