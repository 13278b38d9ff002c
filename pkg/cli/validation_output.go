package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pto-track/pipecheck/pkg/console"
	"github.com/pto-track/pipecheck/pkg/constants"
	"github.com/pto-track/pipecheck/pkg/pipeline"
)

// fatalMessage returns the single line printed when validation cannot start,
// and the exit code that goes with it.
func fatalMessage(path string, err error) (string, constants.ExitCode, bool) {
	switch {
	case errors.Is(err, pipeline.ErrDependencyMissing):
		return "MISSING: YAML parser not available in this build.", constants.ExitDependencyMissing, true
	case errors.Is(err, pipeline.ErrNotFound):
		if path == constants.DefaultPipelineFile {
			return fmt.Sprintf("ERROR: %s not found in repository root", path), constants.ExitNotFound, true
		}
		return fmt.Sprintf("ERROR: %s not found", path), constants.ExitNotFound, true
	}
	return "", 0, false
}

// writeFatal reports a fatal validation error on w and returns the matching
// ExitError. Errors that are not fatal validation errors are returned as is.
func writeFatal(w io.Writer, path string, err error, jsonOutput bool) error {
	message, code, ok := fatalMessage(path, err)
	if !ok {
		return err
	}
	validateLog.Printf("Fatal validation error: code=%d, err=%v", code, err)

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(struct {
			File  string `json:"file"`
			Valid bool   `json:"valid"`
			Fatal string `json:"fatal"`
		}{File: path, Valid: false, Fatal: message}); encErr != nil {
			return encErr
		}
		return &ExitError{Code: code}
	}

	p := console.NewPrinter(w)
	if code == constants.ExitDependencyMissing {
		p.Warning(message)
	} else {
		p.Error(message)
	}
	return &ExitError{Code: code}
}

// PrintCommandError prints an error that is not an ExitError to stderr with
// console formatting. ExitErrors have already been reported on stdout.
func PrintCommandError(err error) {
	var exitErr *ExitError
	if err == nil || errors.As(err, &exitErr) {
		return
	}
	fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
}
