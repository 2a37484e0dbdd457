// Package main is the entry point for the oclctl CLI
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sullhouse/operative-connect-lite/cmd"
)

// version is set at build time via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cmd.SetVersion(version)
	cmd.SetBuildInfo(commit, buildTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()
	os.Exit(cmd.ExitCode(err))
}
