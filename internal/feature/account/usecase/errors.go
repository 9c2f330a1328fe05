// Package usecase implements the business logic for the account feature.
package usecase

import "errors"

var (
	// ErrAccountNotFound is returned by repositories when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailAlreadyExists is returned by repositories when the unique index on email rejects an insert.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is the single authentication failure.
	// Unknown email and wrong password both map to it.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
