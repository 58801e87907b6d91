package application

import "errors"

// Closed error taxonomy of the auth core. Handlers map these to HTTP
// codes with errors.Is; anything else is an internal failure reported
// without detail.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
