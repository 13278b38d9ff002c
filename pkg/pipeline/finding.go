package pipeline

import "fmt"

// Severity classifies a Finding.
type Severity string

const (
	// SeverityWarning marks a style issue that never fails the run.
	SeverityWarning Severity = "warning"
	// SeverityError marks a problem that fails the run.
	SeverityError Severity = "error"
)

// Finding is a single issue produced by a check.
// Line is 1-based, or 0 when the location is unknown.
type Finding struct {
	Severity Severity `json:"severity"`
	Line     int      `json:"line,omitempty"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return f.Message
}

func newLineFinding(severity Severity, line int, format string, args ...any) Finding {
	return Finding{
		Severity: severity,
		Line:     line,
		Message:  fmt.Sprintf("Line %d: ", line) + fmt.Sprintf(format, args...),
	}
}
