package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the pipeline file does not exist.
	ErrNotFound = errors.New("pipeline file not found")

	// ErrDependencyMissing is returned when the validator has no document parser.
	ErrDependencyMissing = errors.New("structured document parser not available")
)

// DuplicateKeyError reports a key that appears twice in the same mapping.
type DuplicateKeyError struct {
	Key  string
	Line int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate key '%s' found at line %d", e.Key, e.Line)
}
