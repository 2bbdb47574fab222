package cli

import (
	"github.com/spf13/cobra"

	"autoupdater.dev/autoupdater/internal/actions/doctor"
	"autoupdater.dev/autoupdater/internal/runtime"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the pipeline can run",
		Long: `Run read-only checks on the auto-updater environment.

The doctor command checks:
  - Environment: git and the script interpreter are on PATH
  - Repository: working directory, script file, remote and branch

It never stages, commits or pushes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := runtime.GetContext(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				cmd.PrintErrln("Error:", err)
				return err
			}
			defer func() { _ = ctx.Close() }()

			return doctor.Action(ctx)
		},
	}
}
