package cli

import (
	"github.com/pto-track/pipecheck/pkg/console"
	"github.com/pto-track/pipecheck/pkg/constants"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show " + constants.CommandName + " version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			console.NewPrinter(cmd.OutOrStdout()).Info(constants.CommandName + " version " + version)
		},
	}
}
