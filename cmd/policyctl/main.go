package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"policycore/internal/cli"
)

// main runs the policyctl command tree and turns its error into an exit
// status.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	stop()
	os.Exit(cli.ExitCode(err))
}
