package services

import "errors"

// Error kinds the handlers classify into HTTP statuses. Services wrap
// these with context via fmt.Errorf("...: %w", Err...).
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrValidation         = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
