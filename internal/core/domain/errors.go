package domain

import "errors"

// Sentinel errors shared across services and the HTTP error handler. The
// transport layer maps each to a stable error code and status.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrContactNotFound     = errors.New("contact not found")
	ErrNameRequired        = errors.New("name is required")
	ErrEmailRequired       = errors.New("email is required")
	ErrInvalidID           = errors.New("invalid id")
	ErrContactLimitReached = errors.New("contact limit reached")
)
