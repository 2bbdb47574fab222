// Package testhelpers provides shared test utilities for auto-updater packages.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	sharedBinaryDir  string
	binaryOnce       sync.Once
	binaryErr        error
)

// GetSharedBinaryPath returns the path of the auto-updater binary, building it on first access.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		sharedBinaryPath, sharedBinaryDir, binaryErr = buildBinary()
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred during binary building.
func GetBinaryError() error {
	return binaryErr
}

// TestMain runs the package tests and removes the shared binary afterwards.
func TestMain(m *testing.M, cleanup func()) {
	code := m.Run()

	if sharedBinaryDir != "" {
		_ = os.RemoveAll(sharedBinaryDir)
	}
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// buildBinary builds the auto-updater binary and returns its path and temp directory.
func buildBinary() (string, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "auto-updater-test-binary-*")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "auto-updater")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/auto-updater")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, tmpDir, nil
}

// findModuleRoot walks up the directory tree from startDir to find the directory containing go.mod.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
