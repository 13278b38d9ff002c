//go:build !integration

package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pto-track/pipecheck/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanPipeline = `trigger:
  - main

pool:
  vmImage: ubuntu-latest

jobs:
  - job: Build
    steps:
      - script: make build
        displayName: Build
      - script: make test
        condition: and(succeeded(), ne(variables['Build.Reason'], 'PullRequest'))
`

// writePipeline writes content to azure-pipelines.yml in a fresh directory.
func writePipeline(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), constants.DefaultPipelineFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func renderText(r *Report) string {
	var buf bytes.Buffer
	r.WriteText(&buf)
	return buf.String()
}

func TestValidate_CleanFile(t *testing.T) {
	report, err := Validate(writePipeline(t, cleanPipeline))
	require.NoError(t, err)

	assert.True(t, report.Valid())
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Errors)
	assert.Equal(t, constants.ExitOK, report.ExitCode())
	assert.Equal(t, "OK: azure-pipelines.yml parsed successfully with no issues found.\n", renderText(report))
}

func TestValidate_TabWarningKeepsSuccess(t *testing.T) {
	content := cleanPipeline + "# owner:\tplatform\n"
	report, err := Validate(writePipeline(t, content))
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, 14, report.Warnings[0].Line)
	assert.Empty(t, report.Errors)
	assert.Equal(t, constants.ExitOK, report.ExitCode())
	assert.Equal(t,
		"WARNINGS:\n"+
			"  - Line 14: TAB character found (YAML prefers spaces).\n"+
			"OK: azure-pipelines.yml parsed successfully with no issues found.\n",
		renderText(report))
}

func TestValidate_UnbalancedCondition(t *testing.T) {
	content := `steps:
  - script: make
    condition: (a and (b or c)
`
	report, err := Validate(writePipeline(t, content))
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, 3, report.Errors[0].Line)
	assert.Equal(t, "Line 3: Unbalanced parentheses in condition: (a and (b or c)", report.Errors[0].Message)
	assert.Equal(t, constants.ExitFindings, report.ExitCode())
}

func TestValidate_DuplicateJob(t *testing.T) {
	content := `jobs:
  - job: Build
    steps:
      - script: make build
    job: Test
`
	report, err := Validate(writePipeline(t, content))
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "YAML parse error: Duplicate key 'job' found at line 5", report.Errors[0].Message)
	assert.Equal(t, constants.ExitFindings, report.ExitCode())
	assert.Equal(t,
		"\nERRORS:\n  - YAML parse error: Duplicate key 'job' found at line 5\n",
		renderText(report))
}

func TestValidate_ChecksDoNotStopEachOther(t *testing.T) {
	content := `jobs:
  - job: Build
    condition: eq(1, 1
    job: Again
# note:	tabbed
`
	report, err := Validate(writePipeline(t, content))
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, 5, report.Warnings[0].Line)

	require.Len(t, report.Errors, 2)
	assert.Equal(t, "Line 3: Unbalanced parentheses in condition: eq(1, 1", report.Errors[0].Message)
	assert.Equal(t, "YAML parse error: Duplicate key 'job' found at line 4", report.Errors[1].Message)
}

func TestValidate_NotFound(t *testing.T) {
	report, err := Validate(filepath.Join(t.TempDir(), constants.DefaultPipelineFile))

	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, report)
}

func TestValidate_DirectoryIsNotFound(t *testing.T) {
	_, err := Validate(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidate_DependencyMissing(t *testing.T) {
	path := writePipeline(t, cleanPipeline)

	report, err := NewValidator(WithParser(nil)).Validate(path)
	require.ErrorIs(t, err, ErrDependencyMissing)
	assert.Nil(t, report)
}

func TestValidate_DependencyCheckedBeforeFile(t *testing.T) {
	_, err := NewValidator(WithParser(nil)).Validate(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, ErrDependencyMissing)
}

func TestValidate_UnreadableText(t *testing.T) {
	report, err := Validate(writePipeline(t, "name: \xff\n"))
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Message, "Cannot read file:")
	assert.Equal(t, constants.ExitFindings, report.ExitCode())
}

func TestValidate_Idempotent(t *testing.T) {
	path := writePipeline(t, `trigger: none
	# tabbed comment
steps:
  - script: make
    condition: or(a, b
`)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	first, err := Validate(path)
	require.NoError(t, err)
	second, err := Validate(path)
	require.NoError(t, err)

	assert.Equal(t, renderText(first), renderText(second))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "validation must not modify the file")
}
