package doctor

import (
	"fmt"
	"os"
	"strings"

	"autoupdater.dev/autoupdater/internal/git"
	"autoupdater.dev/autoupdater/internal/runtime"
)

// checkRepository checks the working directory, its remote and the script
func checkRepository(ctx *runtime.Context, r *report) {
	splog := ctx.Splog
	settings := ctx.Settings

	info, err := os.Stat(settings.WorkDir)
	if err != nil || !info.IsDir() {
		r.errors = append(r.errors, fmt.Sprintf("working directory %s does not exist", settings.WorkDir))
		splog.Error("  working directory %s does not exist", settings.WorkDir)
		return
	}
	splog.Info("  ✅ Working directory %s exists", settings.WorkDir)

	if _, err := os.Stat(settings.ScriptPath()); err != nil {
		r.errors = append(r.errors, fmt.Sprintf("script %s not found", settings.ScriptPath()))
		splog.Error("  script %s not found", settings.ScriptPath())
	} else {
		splog.Info("  ✅ Script %s exists", settings.Script)
	}

	repo, err := git.OpenRepository(settings.WorkDir)
	if err != nil {
		r.errors = append(r.errors, fmt.Sprintf("%s is not a git repository", settings.WorkDir))
		splog.Error("  %s is not a git repository", settings.WorkDir)
		return
	}
	splog.Info("  ✅ Working directory is a git repository")

	urls, err := repo.RemoteURLs(settings.Remote)
	if err != nil {
		r.errors = append(r.errors, fmt.Sprintf("remote '%s' is not configured", settings.Remote))
		splog.Error("  remote '%s' is not configured", settings.Remote)
	} else {
		splog.Info("  ✅ Remote '%s' is configured (%s)", settings.Remote, strings.Join(urls, ", "))
	}

	hasBranch, err := repo.HasBranch(settings.Branch)
	switch {
	case err != nil:
		r.errors = append(r.errors, err.Error())
		splog.Error("  %v", err)
	case !hasBranch:
		r.errors = append(r.errors, fmt.Sprintf("branch '%s' does not exist", settings.Branch))
		splog.Error("  branch '%s' does not exist", settings.Branch)
	default:
		splog.Info("  ✅ Branch '%s' exists", settings.Branch)
	}

	current, err := repo.CurrentBranch()
	if err == nil && current != settings.Branch {
		r.warnings = append(r.warnings, fmt.Sprintf("HEAD is on '%s', pushes go to '%s'", current, settings.Branch))
		splog.Warn("  HEAD is on '%s', pushes go to '%s'", current, settings.Branch)
	}

	dirty, err := git.NewCommandRunner(settings.WorkDir).HasUncommittedChanges(ctx)
	if err == nil && dirty {
		r.warnings = append(r.warnings, "working tree has uncommitted changes; they will be included in the next commit")
		splog.Warn("  working tree has uncommitted changes")
	}
}
