package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"autoupdater.dev/autoupdater/internal/cli"
	autoerrors "autoupdater.dev/autoupdater/internal/errors"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd(version, commit, date)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(autoerrors.ExitCode(err))
}
