package cli

import (
	"github.com/pto-track/pipecheck/pkg/constants"
	"github.com/pto-track/pipecheck/pkg/logger"
	"github.com/pto-track/pipecheck/pkg/pipeline"
	"github.com/spf13/cobra"
)

var validateLog = logger.New("cli:validate_command")

// NewValidateCommand creates the root pipecheck command, which validates a
// pipeline file. A nil validator uses the default one.
func NewValidateCommand(validator *pipeline.Validator) *cobra.Command {
	if validator == nil {
		validator = pipeline.NewValidator()
	}

	cmd := &cobra.Command{
		Use:   constants.CommandName + " [file]",
		Short: "Validate an Azure Pipelines configuration file",
		Long: `Validate a pipeline configuration file for structural problems before it is
used by the build system. The file is checked for:

  - tab characters (reported as warnings)
  - condition: expressions with unbalanced parentheses on the same line
  - YAML syntax errors and duplicate mapping keys

If no file is given, ` + constants.DefaultPipelineFile + ` in the current directory is validated.

Exit codes:
  0  no errors (warnings allowed)
  1  file not found
  2  YAML parser not available
  3  one or more errors found

Examples:
  ` + constants.CommandName + `                          # Validate ` + constants.DefaultPipelineFile + `
  ` + constants.CommandName + ` ci/release.yml           # Validate another file
  ` + constants.CommandName + ` --json                   # Output the report as JSON`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")

			path := constants.DefaultPipelineFile
			if len(args) == 1 {
				path = args[0]
			}
			validateLog.Printf("Running validate command: file=%s, json=%v", path, jsonOutput)

			return runValidate(cmd, validator, path, jsonOutput)
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output the report in JSON format")

	return cmd
}

func runValidate(cmd *cobra.Command, validator *pipeline.Validator, path string, jsonOutput bool) error {
	out := cmd.OutOrStdout()

	report, err := validator.Validate(path)
	if err != nil {
		return writeFatal(out, path, err, jsonOutput)
	}

	if jsonOutput {
		if err := report.WriteJSON(out); err != nil {
			return err
		}
	} else {
		report.WriteText(out)
	}

	if code := report.ExitCode(); code != constants.ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}
