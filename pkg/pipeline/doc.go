// Package pipeline validates a CI pipeline configuration file for structural
// problems before a build system consumes it.
//
// # Checks
//
// Validation runs a fixed sequence of independent checks over one file:
//
//   - tab scan: every line holding a horizontal tab yields a warning
//   - condition scan: a line holding "condition:" whose remaining text has
//     unequal counts of "(" and ")" yields an error
//   - structural parse: the file is parsed with goccy/go-yaml and every
//     mapping is walked for duplicate keys; the first duplicate, or any
//     syntax error, yields a single error
//
// The condition scan only looks at one physical line. An expression that
// continues onto following lines is judged by its first line alone.
//
// # Exit Codes
//
// A Report maps to the process exit code: 0 when there are no errors
// (warnings alone never fail a run) and 3 when there is at least one error.
// A missing file (ErrNotFound) maps to 1 and a missing parser
// (ErrDependencyMissing) to 2; both stop validation before any check runs.
package pipeline
