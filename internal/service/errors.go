package service

import "errors"

// Sentinel errors the controllers map to HTTP statuses.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAdminEmailReferenced rejects edits to an email an admin row points at.
	ErrAdminEmailReferenced = errors.New("email is referenced by an admin record")
)
