package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"autoupdater.dev/autoupdater/internal/config"
	autoerrors "autoupdater.dev/autoupdater/internal/errors"
	"autoupdater.dev/autoupdater/internal/git"
	"autoupdater.dev/autoupdater/internal/output"
)

// ScriptRunner runs the external data-refresh process
type ScriptRunner interface {
	Run(ctx context.Context) (int, error)
	String() string
}

// GitClient performs the publish step
type GitClient interface {
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) (string, error)
	Push(ctx context.Context, remote, branch string) error
}

// Options configures a Pipeline
type Options struct {
	Settings config.Settings
	Script   ScriptRunner
	Git      GitClient
	Splog    *output.Splog
	// Now defaults to time.Now
	Now func() time.Time
}

// Result records which steps ran
type Result struct {
	ScriptRan      bool
	ScriptExitCode int
	Staged         bool
	Committed      bool
	Pushed         bool
	CommitMessage  string
}

// Pipeline runs the refresh-then-publish workflow once
type Pipeline struct {
	settings config.Settings
	script   ScriptRunner
	git      GitClient
	splog    *output.Splog
	now      func() time.Time
}

// New creates a Pipeline
func New(opts Options) *Pipeline {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	splog := opts.Splog
	if splog == nil {
		splog = output.NewSplog()
	}
	return &Pipeline{
		settings: opts.Settings,
		script:   opts.Script,
		git:      opts.Git,
		splog:    splog,
		now:      now,
	}
}

// CommitMessage formats the commit message for a run started at now
func CommitMessage(prefix, layout string, now time.Time) string {
	return prefix + now.Format(layout)
}

// Run executes the pipeline. A nil error means the changes reached the remote.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	var res Result

	if err := checkWorkDir(p.settings.WorkDir); err != nil {
		p.splog.Error("Working directory %s does not exist", p.settings.WorkDir)
		return res, err
	}

	if err := p.runScript(ctx, &res); err != nil {
		return res, err
	}

	return res, p.publish(ctx, &res)
}

func checkWorkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return autoerrors.NewWorkDirError(dir, err)
	}
	if !info.IsDir() {
		return autoerrors.NewWorkDirError(dir, fmt.Errorf("not a directory"))
	}
	return nil
}

func (p *Pipeline) runScript(ctx context.Context, res *Result) error {
	p.splog.Info("🚀 Running %s in %s", p.script, p.settings.WorkDir)

	code, err := p.script.Run(ctx)
	res.ScriptRan = true
	res.ScriptExitCode = code
	if err != nil {
		p.splog.Error("Could not run %s: %v", p.script, err)
		return autoerrors.NewScriptError(p.script.String(), code, err)
	}
	if code < 0 {
		p.splog.Error("%s was terminated by a signal, changes were not pushed", p.script)
		return autoerrors.NewScriptError(p.script.String(), code, nil)
	}
	if code != 0 {
		p.splog.Error("%s failed with exit code %d, changes were not pushed", p.script, code)
		return autoerrors.NewScriptError(p.script.String(), code, nil)
	}

	p.splog.Success("%s finished successfully", p.script)
	return nil
}

// publish stages, commits and pushes. Only the push result is returned.
func (p *Pipeline) publish(ctx context.Context, res *Result) error {
	remote, branch := p.settings.Remote, p.settings.Branch
	res.CommitMessage = CommitMessage(p.settings.MessagePrefix, p.settings.TimestampLayout, p.now())

	p.splog.Info("📦 Publishing changes to %s/%s", remote, branch)

	if err := p.git.StageAll(ctx); err != nil {
		p.splog.Warn("Staging failed: %v", err)
	} else {
		res.Staged = true
	}

	summary, err := p.git.Commit(ctx, res.CommitMessage)
	switch {
	case git.IsNothingToCommit(err):
		p.splog.Warn("Nothing to commit")
	case err != nil:
		p.splog.Warn("Commit failed: %v", err)
	default:
		res.Committed = true
		p.splog.Debug("%s", summary)
	}

	if err := p.git.Push(ctx, remote, branch); err != nil {
		p.splog.Error("Failed to push to %s/%s", remote, branch)
		p.splog.Debug("%v", err)
		if !errors.Is(err, autoerrors.ErrPushFailed) {
			err = autoerrors.NewPushError(remote, branch, err)
		}
		return err
	}

	res.Pushed = true
	p.splog.Success("Pushed to %s/%s: %s", remote, branch, res.CommitMessage)
	return nil
}
