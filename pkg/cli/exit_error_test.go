//go:build !integration

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pto-track/pipecheck/pkg/constants"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "not found", err: &ExitError{Code: constants.ExitNotFound}, want: 1},
		{name: "dependency missing", err: &ExitError{Code: constants.ExitDependencyMissing}, want: 2},
		{name: "findings", err: &ExitError{Code: constants.ExitFindings}, want: 3},
		{name: "wrapped exit error", err: fmt.Errorf("run: %w", &ExitError{Code: constants.ExitFindings}), want: 3},
		{name: "plain error", err: errors.New("unknown flag: --nope"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeOf(tt.err))
		})
	}
}

func TestExitError_Error(t *testing.T) {
	assert.Equal(t, "exit status 3", (&ExitError{Code: constants.ExitFindings}).Error())
}
