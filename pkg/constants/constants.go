// Package constants holds the fixed names and codes shared by the validator
// and the CLI.
package constants

// CommandName is the name the CLI is invoked with.
const CommandName = "pipecheck"

// DefaultPipelineFile is the pipeline configuration validated when no path is
// given. It is resolved relative to the working directory.
const DefaultPipelineFile = "azure-pipelines.yml"

// ConditionMarker introduces a conditional expression on a pipeline line.
const ConditionMarker = "condition:"

// MergeKey is the YAML merge key, which is not an ordinary mapping key.
const MergeKey = "<<"

// ExitCode is a process exit status reported by the CLI.
type ExitCode int

const (
	// ExitOK means the file parsed with no errors. Warnings alone keep this code.
	ExitOK ExitCode = 0
	// ExitNotFound means the pipeline file does not exist.
	ExitNotFound ExitCode = 1
	// ExitDependencyMissing means no structured document parser is available.
	ExitDependencyMissing ExitCode = 2
	// ExitFindings means at least one error was found.
	ExitFindings ExitCode = 3
)

// Int returns the code as a plain int for os.Exit.
func (c ExitCode) Int() int {
	return int(c)
}
