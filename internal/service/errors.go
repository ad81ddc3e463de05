package service

import (
	"errors"

	"patient-appointment-system/internal/repository"
)

var (
	// ErrNotFound signals a lookup by id or email that matched no record.
	ErrNotFound = repository.ErrNotFound

	// ErrAlreadyExists signals a registration with an email that is taken.
	ErrAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials signals a failed authentication attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
