package services

import "errors"

var (
	// ErrValidation marks a request that is missing a required field.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials keeps login failures indistinguishable
	// between unknown user and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
