package auth

import "errors"

var (
	ErrCredentialsRequired = errors.New("Username and password are required")
	ErrInvalidUsername     = errors.New("Invalid username")
	ErrIncorrectPassword   = errors.New("Incorrect password")
	ErrNotAuthenticated    = errors.New("Not authenticated")
)
