package service

import "errors"

// Domain errors. Every one of these is recoverable at the request boundary
// and maps to a distinct error envelope; none is fatal to the process.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrInvalidFileType    = errors.New("invalid file type")
	ErrFileTooLarge       = errors.New("file too large")
	ErrDuplicatePeriod    = errors.New("submission already exists for period")
	ErrInvalidTransition  = errors.New("payment not in a reviewable state")
)
