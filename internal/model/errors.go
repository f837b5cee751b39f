package model

import "errors"

var (
	// User related errors
	ErrUserNotFound = errors.New("user not found")

	// Session token errors, distinguished so the auth gate can report
	// the exact rejection reason.
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")

	// Application related errors
	ErrApplicationNotFound = errors.New("application not found")
)
