// Package domain defines domain-level rules and errors for the account feature.
package domain

import (
	"fmt"
	"strings"
)

// Violation identifies a single validation rule that a candidate account failed.
type Violation string

// Validation rules checked when an account is created.
const (
	MissingName      Violation = "missing_name"
	MissingEmail     Violation = "missing_email"
	DuplicateEmail   Violation = "duplicate_email"
	PasswordMismatch Violation = "password_mismatch"
	PasswordTooShort Violation = "password_too_short"
)

// ValidationError reports every rule a candidate account violated.
// It is recovered by callers (e.g. to re-render a form), never treated as fatal.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = string(v)
	}
	return fmt.Sprintf("account is invalid: %s", strings.Join(parts, ", "))
}

// Has reports whether v is among the violations.
func (e *ValidationError) Has(v Violation) bool {
	for _, got := range e.Violations {
		if got == v {
			return true
		}
	}
	return false
}
