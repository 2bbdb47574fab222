package doctor

import (
	"os/exec"
	"strings"

	"autoupdater.dev/autoupdater/internal/runtime"
)

// checkEnvironment checks the external tools the pipeline shells out to
func checkEnvironment(ctx *runtime.Context, r *report) {
	splog := ctx.Splog

	gitVersion, err := exec.CommandContext(ctx, "git", "version").Output()
	if err != nil {
		r.errors = append(r.errors, "git is not installed or not in PATH")
		splog.Error("  git is not installed or not in PATH")
	} else {
		splog.Info("  ✅ %s", strings.TrimSpace(string(gitVersion)))
	}

	interpreter := ctx.Settings.Interpreter
	path, err := exec.LookPath(interpreter)
	if err != nil {
		r.errors = append(r.errors, interpreter+" is not installed or not in PATH")
		splog.Error("  %s is not installed or not in PATH", interpreter)
	} else {
		splog.Info("  ✅ %s (%s)", interpreter, path)
	}
}
