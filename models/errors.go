package models

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrConflict           = errors.New("entity was modified concurrently")
	ErrUnavailable        = errors.New("storage backend not configured")
)
