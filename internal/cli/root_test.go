package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"autoupdater.dev/autoupdater/internal/cli"
	"autoupdater.dev/autoupdater/internal/config"
	autoerrors "autoupdater.dev/autoupdater/internal/errors"
	"autoupdater.dev/autoupdater/internal/git"
	"autoupdater.dev/autoupdater/testhelpers"
)

var commitMessagePattern = regexp.MustCompile(`^Auto update: \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

// pipelineScene creates a repository with an origin remote and a shell refresh script.
// The interpreter is switched to sh through the repo config file.
func pipelineScene(t *testing.T, scriptBody string) *testhelpers.Scene {
	t.Helper()
	return testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.RemoteSceneSetup(s); err != nil {
			return err
		}
		if err := s.Repo.WriteFile("refresh.sh", scriptBody); err != nil {
			return err
		}
		sh, script := "sh", "refresh.sh"
		return config.SaveRepoConfig(s.Dir, &config.RepoConfig{
			Interpreter: &sh,
			Script:      &script,
		})
	})
}

func runBinary(t *testing.T, dir string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(getBinary(t), args...)
	cmd.Env = append(os.Environ(), testhelpers.IsolatedGitEnv...)
	cmd.Env = append(cmd.Env, config.EnvWorkDir+"="+dir, config.EnvLogFile+"=")
	output, err := cmd.CombinedOutput()
	if err == nil {
		return string(output), 0
	}
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "unexpected error: %v", err)
	return string(output), exitErr.ExitCode()
}

func remoteHeadMessage(t *testing.T, scene *testhelpers.Scene) string {
	t.Helper()
	remote, err := git.OpenRepository(scene.RemoteDir)
	require.NoError(t, err)
	msg, err := remote.BranchCommitMessage("main")
	require.NoError(t, err)
	return msg
}

func TestBinaryExitCodes(t *testing.T) {
	t.Parallel()

	t.Run("success exits 0 and pushes a timestamped commit", func(t *testing.T) {
		t.Parallel()
		scene := pipelineScene(t, "echo refreshing\necho '#EXTM3U' > CN.m3u\n")

		output, code := runBinary(t, scene.Dir)
		require.Equal(t, 0, code, output)
		require.Contains(t, output, "refreshing")
		require.Contains(t, output, "✅ Pushed to origin/main")
		require.Regexp(t, commitMessagePattern, remoteHeadMessage(t, scene))
	})

	t.Run("missing working directory exits 1", func(t *testing.T) {
		t.Parallel()
		output, code := runBinary(t, filepath.Join(t.TempDir(), "missing"))
		require.Equal(t, 1, code)
		require.Contains(t, output, "❌ Working directory")
		require.NotContains(t, output, "Running")
	})

	t.Run("working directory that is a file exits 1", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0600))

		output, code := runBinary(t, file)
		require.Equal(t, 1, code)
		require.Contains(t, output, "❌ Working directory "+file+" does not exist")
		require.NotContains(t, output, "failed to load settings")
		require.NotContains(t, output, "Running")
	})

	t.Run("failing script exits 1 without touching git", func(t *testing.T) {
		t.Parallel()
		scene := pipelineScene(t, "echo '#EXTM3U' > CN.m3u\nexit 4\n")

		output, code := runBinary(t, scene.Dir)
		require.Equal(t, 1, code)
		require.Contains(t, output, "failed with exit code 4")
		require.NotContains(t, output, "Publishing")
		require.Equal(t, "1", remoteHeadMessage(t, scene))

		messages, err := scene.Repo.ListCommitMessages()
		require.NoError(t, err)
		require.Equal(t, []string{"1"}, messages)
	})

	t.Run("push failure exits 1 after committing", func(t *testing.T) {
		t.Parallel()
		scene := pipelineScene(t, "echo '#EXTM3U' > CN.m3u\n")
		require.NoError(t, os.RemoveAll(scene.RemoteDir))

		output, code := runBinary(t, scene.Dir)
		require.Equal(t, 1, code)
		require.Contains(t, output, "❌ Failed to push to origin/main")

		messages, err := scene.Repo.ListCommitMessages()
		require.NoError(t, err)
		require.Regexp(t, commitMessagePattern, messages[0])
	})

	t.Run("second run with nothing to commit still exits 0", func(t *testing.T) {
		t.Parallel()
		scene := pipelineScene(t, "echo '#EXTM3U' > CN.m3u\n")

		output, code := runBinary(t, scene.Dir)
		require.Equal(t, 0, code, output)

		output, code = runBinary(t, scene.Dir)
		require.Equal(t, 0, code, output)
		require.Contains(t, output, "Nothing to commit")
	})

	t.Run("doctor exits 1 on a missing working directory", func(t *testing.T) {
		t.Parallel()
		_, code := runBinary(t, filepath.Join(t.TempDir(), "missing"), "doctor")
		require.Equal(t, 1, code)
	})

	t.Run("version exits 0", func(t *testing.T) {
		t.Parallel()
		output, code := runBinary(t, t.TempDir(), "version")
		require.Equal(t, 0, code)
		require.Contains(t, output, "auto-updater dev")
	})
}

func TestRootCommand(t *testing.T) {
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv(config.EnvLogFile, "")

	t.Run("runs the pipeline in the configured directory", func(t *testing.T) {
		scene := pipelineScene(t, "echo '#EXTM3U' > CN.m3u\n")
		t.Setenv(config.EnvWorkDir, scene.Dir)

		var out bytes.Buffer
		cmd := cli.NewRootCmd("test", "abc", "today")
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{})

		err := cmd.ExecuteContext(context.Background())
		require.NoError(t, err, out.String())
		require.Contains(t, out.String(), "🚀 Running sh refresh.sh in "+scene.Dir)
		require.Contains(t, out.String(), "✅ sh refresh.sh finished successfully")
		require.Regexp(t, commitMessagePattern, remoteHeadMessage(t, scene))
	})

	t.Run("writes the log file when configured", func(t *testing.T) {
		scene := pipelineScene(t, "exit 2\n")
		logFile := filepath.Join(t.TempDir(), "auto-updater.log")
		t.Setenv(config.EnvWorkDir, scene.Dir)
		t.Setenv(config.EnvLogFile, logFile)

		var out bytes.Buffer
		cmd := cli.NewRootCmd("test", "abc", "today")
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{})

		err := cmd.ExecuteContext(context.Background())
		require.ErrorIs(t, err, autoerrors.ErrScriptFailed)

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "sh refresh.sh failed with exit code 2")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		var out bytes.Buffer
		cmd := cli.NewRootCmd("test", "abc", "today")
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"extra"})

		require.Error(t, cmd.Execute())
	})
}
