package models

import "errors"

// Common errors for storage and authentication operations.
var (
	// ErrNotFound means no record matched the given id or key. Single-entity
	// lookups return it instead of an empty result; list queries never do.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateAdmin means an admin user with that username already exists.
	ErrDuplicateAdmin = errors.New("admin user already exists")

	// ErrDuplicateSetting means a setting with that key already exists.
	ErrDuplicateSetting = errors.New("setting already exists")

	// ErrInvalidCredentials means the username/password pair did not verify.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
