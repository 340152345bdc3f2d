package model

import "errors"

var (
	// ErrInvalidCredentials indicates an unknown username or a password mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAdminNotFound indicates that the requested admin does not exist.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrSessionStale indicates a cryptographically valid token that is no
	// longer the principal's active session token (superseded by a newer login).
	ErrSessionStale = errors.New("session is no longer active")
)
