package testhelpers

import (
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary Git repository.
// Scenes never change the process working directory, so tests using them may run in parallel.
type Scene struct {
	Dir       string
	Repo      *GitRepo
	RemoteDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary Git repository.
// Cleanup is handled by t.TempDir().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  dir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup creates a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// RemoteSceneSetup creates a single commit, a bare "origin" remote, and pushes main to it.
func RemoteSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	remoteDir, err := scene.Repo.CreateBareRemote("origin")
	if err != nil {
		return err
	}
	scene.RemoteDir = remoteDir
	return scene.Repo.PushBranch("origin", "main")
}
