package main

import (
	"os"

	"github.com/pto-track/pipecheck/pkg/cli"
	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = newRootCommand()

func newRootCommand() *cobra.Command {
	cmd := cli.NewValidateCommand(nil)
	cmd.Version = version
	cmd.AddCommand(cli.NewVersionCommand(version))
	return cmd
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintCommandError(err)
		os.Exit(cli.ExitCodeOf(err))
	}
}
