package service

import (
	"errors"

	"portfolio_admin/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrSendFailed         = errors.New("send email failed")

	// ErrNotFound is the repository sentinel, re-exported for handlers.
	ErrNotFound = repository.ErrNotFound
)
