package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/pto-track/pipecheck/pkg/fileutil"
	"github.com/pto-track/pipecheck/pkg/logger"
)

var validatorLog = logger.New("pipeline:validator")

// Validator runs the pipeline checks against a file.
type Validator struct {
	parser DocumentParser
}

// Option configures a Validator.
type Option func(*Validator)

// WithParser replaces the document parser. A nil parser makes every
// validation fail with ErrDependencyMissing.
func WithParser(p DocumentParser) Option {
	return func(v *Validator) {
		v.parser = p
	}
}

// NewValidator returns a Validator backed by YAMLParser unless overridden.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{parser: YAMLParser{}}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks the file at path with the default validator.
func Validate(path string) (*Report, error) {
	return NewValidator().Validate(path)
}

// Validate checks the file at path.
//
// A missing parser (ErrDependencyMissing) or a missing file (ErrNotFound) is
// returned as an error before any check runs. Every other problem, including
// a file that cannot be read, is collected into the returned Report.
func (v *Validator) Validate(path string) (*Report, error) {
	validatorLog.Printf("Validating pipeline file: %s", path)

	if v.parser == nil {
		return nil, ErrDependencyMissing
	}
	if !fileutil.FileExists(path) {
		validatorLog.Printf("Pipeline file not found: %s", path)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	report := newReport(filepath.Base(path))

	text, err := fileutil.ReadText(path)
	if err != nil {
		report.add(Finding{Severity: SeverityError, Message: fmt.Sprintf("Cannot read file: %v", err)})
		return report, nil
	}

	report.add(v.check(NewDocument(path, text))...)

	validatorLog.Printf("Validation complete: warnings=%d, errors=%d", len(report.Warnings), len(report.Errors))
	return report, nil
}

// check runs every check over doc in a fixed order: tabs, conditions, then
// the structural parse. No check stops the ones after it.
func (v *Validator) check(doc *Document) []Finding {
	var findings []Finding
	findings = append(findings, checkTabs(doc)...)
	findings = append(findings, checkConditions(doc)...)
	findings = append(findings, checkStructure(v.parser, doc)...)
	return findings
}
