// Package cli wires the auto-updater commands.
package cli

import (
	"github.com/spf13/cobra"

	"autoupdater.dev/autoupdater/internal/git"
	"autoupdater.dev/autoupdater/internal/pipeline"
	"autoupdater.dev/autoupdater/internal/runtime"
	"autoupdater.dev/autoupdater/internal/script"
)

// NewRootCmd creates the root cobra command. Running it with no subcommand runs the pipeline.
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "auto-updater",
		Short: "Run the playlist refresh script and push the result to origin/main",
		Long: `auto-updater runs the data-refresh script in its working directory and,
only if the script exits 0, stages all changes, commits them with a
timestamped message and pushes to origin/main.

Exit status is 0 when the push succeeded and 1 when the working directory
is missing, the script failed, or the push failed.`,
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

			return runPipeline(ctx, cmd)
		},
	}

	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

func runPipeline(ctx *runtime.Context, cmd *cobra.Command) error {
	settings := ctx.Settings

	p := pipeline.New(pipeline.Options{
		Settings: settings,
		Script:   script.NewRunner(settings.WorkDir, settings.Interpreter, settings.Script, ctx.Splog.Writer(), cmd.ErrOrStderr()),
		Git:      git.NewCommandRunner(settings.WorkDir),
		Splog:    ctx.Splog,
	})

	_, err := p.Run(ctx)
	return err
}
