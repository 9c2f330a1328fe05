package domain

import "strings"

// NormalizeEmail returns the canonical form of an email address used for
// storage, uniqueness and lookup: surrounding whitespace removed and the
// whole address lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
