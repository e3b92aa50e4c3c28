// Package validate checks account records against adapter specifications.
// A validation verdict is a normal outcome, not an exception: callers
// inspect Errors and Warnings and decide whether to proceed.
package validate

import (
	"fmt"
	"strings"
)

// Result is a structured validation verdict. Valid is true iff Errors is
// empty; warnings never invalidate a record.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

func newResult() *Result {
	return &Result{Valid: true}
}

// AddError records an error and forces Valid to false.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Valid = false
}

// AddWarning records a warning without affecting Valid.
func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Err returns nil for a valid result, or a *FailedError carrying the
// error and warning lists. Warnings alone never produce an error.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	return &FailedError{Errors: r.Errors, Warnings: r.Warnings}
}

// FailedError is the error form of an invalid Result.
type FailedError struct {
	Errors   []string
	Warnings []string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}
