package services

import "errors"

var (
	// ErrInvalidInput marks precondition violations (empty content, bad
	// parent reference, and the like) so controllers can answer 400
	// instead of 500.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
