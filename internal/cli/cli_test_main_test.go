package cli_test

import (
	"testing"

	"autoupdater.dev/autoupdater/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.TestMain(m, nil)
}

// getBinary returns the path to the lazily built auto-updater binary.
func getBinary(t *testing.T) string {
	t.Helper()
	binaryPath := testhelpers.GetSharedBinaryPath()
	if binaryPath == "" {
		if err := testhelpers.GetBinaryError(); err != nil {
			t.Fatalf("failed to build auto-updater binary: %v", err)
		}
		t.Fatal("auto-updater binary not built")
	}
	return binaryPath
}
