// Package doctor provides read-only pre-flight checks for the auto-updater pipeline.
package doctor

import (
	"fmt"

	"autoupdater.dev/autoupdater/internal/runtime"
)

// report collects check outcomes
type report struct {
	warnings []string
	errors   []string
}

// Action runs diagnostic checks without staging, committing or pushing anything
func Action(ctx *runtime.Context) error {
	splog := ctx.Splog
	var r report

	splog.Info("Running auto-updater doctor...")
	splog.Newline()

	splog.Info("Environment:")
	checkEnvironment(ctx, &r)

	splog.Newline()

	splog.Info("Repository:")
	checkRepository(ctx, &r)

	splog.Newline()
	switch {
	case len(r.errors) > 0:
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(r.errors), len(r.warnings))
		for _, err := range r.errors {
			splog.Error("  %s", err)
		}
		for _, warn := range r.warnings {
			splog.Warn("  %s", warn)
		}
		return fmt.Errorf("doctor found %d error(s)", len(r.errors))
	case len(r.warnings) > 0:
		splog.Info("Doctor found %d warning(s). The pipeline should still run.", len(r.warnings))
		for _, warn := range r.warnings {
			splog.Warn("  %s", warn)
		}
	default:
		splog.Success("All checks passed. The pipeline is ready to run.")
	}

	return nil
}
