package domain

import "errors"

// Error taxonomy shared by the services. Handlers map these onto HTTP status
// codes; everything here is recoverable within a single request.
var (
	ErrValidation   = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
