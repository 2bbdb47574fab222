package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	autoerrors "autoupdater.dev/autoupdater/internal/errors"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	t.Run("work dir error", func(t *testing.T) {
		err := fmt.Errorf("run: %w", autoerrors.NewWorkDirError("/missing", nil))
		require.ErrorIs(t, err, autoerrors.ErrWorkDirMissing)
		require.NotErrorIs(t, err, autoerrors.ErrScriptFailed)
		require.Contains(t, err.Error(), "/missing")
	})

	t.Run("script error keeps exit code", func(t *testing.T) {
		err := fmt.Errorf("run: %w", autoerrors.NewScriptError("python3 iptv-test.py", 2, nil))
		require.ErrorIs(t, err, autoerrors.ErrScriptFailed)

		var scriptErr *autoerrors.ScriptError
		require.True(t, errors.As(err, &scriptErr))
		require.Equal(t, 2, scriptErr.ExitCode)
		require.Equal(t, "python3 iptv-test.py exited with code 2", scriptErr.Error())
	})

	t.Run("script that could not start", func(t *testing.T) {
		cause := errors.New("executable file not found")
		err := autoerrors.NewScriptError("python3 iptv-test.py", -1, cause)
		require.ErrorIs(t, err, autoerrors.ErrScriptFailed)
		require.ErrorIs(t, err, cause)
		require.Contains(t, err.Error(), "could not be started")
	})

	t.Run("script killed by a signal", func(t *testing.T) {
		err := autoerrors.NewScriptError("sh refresh.sh", -1, nil)
		require.ErrorIs(t, err, autoerrors.ErrScriptFailed)
		require.Equal(t, "sh refresh.sh was terminated by a signal", err.Error())
	})

	t.Run("push error unwraps git error", func(t *testing.T) {
		gitErr := autoerrors.NewGitCommandError("git", []string{"push", "origin", "main"}, "", "rejected", errors.New("exit status 1"))
		err := autoerrors.NewPushError("origin", "main", gitErr)
		require.ErrorIs(t, err, autoerrors.ErrPushFailed)

		var cmdErr *autoerrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
		require.Equal(t, "rejected", cmdErr.Stderr)
		require.Contains(t, err.Error(), "origin/main")
	})
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, autoerrors.ExitCode(nil))
	require.Equal(t, 1, autoerrors.ExitCode(autoerrors.ErrWorkDirMissing))
	require.Equal(t, 1, autoerrors.ExitCode(autoerrors.NewScriptError("sh x", 3, nil)))
	require.Equal(t, 1, autoerrors.ExitCode(autoerrors.NewPushError("origin", "main", nil)))
}
