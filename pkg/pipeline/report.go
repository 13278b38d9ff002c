package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pto-track/pipecheck/pkg/console"
	"github.com/pto-track/pipecheck/pkg/constants"
)

// Report is the outcome of validating one file.
type Report struct {
	File     string    `json:"file"`
	Warnings []Finding `json:"warnings"`
	Errors   []Finding `json:"errors"`
}

func newReport(file string) *Report {
	return &Report{
		File:     file,
		Warnings: []Finding{},
		Errors:   []Finding{},
	}
}

// add files each finding under its severity, keeping encounter order.
func (r *Report) add(findings ...Finding) {
	for _, f := range findings {
		if f.Severity == SeverityWarning {
			r.Warnings = append(r.Warnings, f)
		} else {
			r.Errors = append(r.Errors, f)
		}
	}
}

// Valid reports whether no errors were found. Warnings do not count.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// ExitCode returns the process exit code for the report.
func (r *Report) ExitCode() constants.ExitCode {
	if r.Valid() {
		return constants.ExitOK
	}
	return constants.ExitFindings
}

// SuccessMessage is the line printed when a file has no errors.
func (r *Report) SuccessMessage() string {
	return fmt.Sprintf("OK: %s parsed successfully with no issues found.", r.File)
}

// WriteText writes the human-readable report: an optional WARNINGS section,
// then either an ERRORS section or the success line.
func (r *Report) WriteText(w io.Writer) {
	p := console.NewPrinter(w)

	if len(r.Warnings) > 0 {
		p.Section("WARNINGS:", false)
		for _, f := range r.Warnings {
			p.ListItem(f.Message)
		}
	}

	if len(r.Errors) > 0 {
		p.Blank()
		p.Section("ERRORS:", true)
		for _, f := range r.Errors {
			p.ListItem(f.Message)
		}
		return
	}

	p.Success(r.SuccessMessage())
}

// WriteJSON writes the report as a single indented JSON object.
func (r *Report) WriteJSON(w io.Writer) error {
	out := struct {
		*Report
		Valid bool `json:"valid"`
	}{Report: r, Valid: r.Valid()}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
