package cli

import (
	"errors"
	"fmt"

	"github.com/pto-track/pipecheck/pkg/constants"
)

// ExitError carries a process exit code out of a cobra RunE. The command has
// already written everything the user needs to stdout.
type ExitError struct {
	Code constants.ExitCode
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCodeOf returns the exit code for an error returned by a command.
// Errors that are not ExitErrors, such as argument errors, exit with 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return constants.ExitOK.Int()
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code.Int()
	}
	return 1
}
