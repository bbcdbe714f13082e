package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned on sign-up with an already-registered email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is returned on sign-in with a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
