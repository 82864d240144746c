package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP layer maps
// them to status codes in one place; nothing below it knows about HTTP.
var (
	ErrUserExists           = errors.New("username already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyAttempts      = errors.New("too many failed login attempts")
	ErrInvalidToken         = errors.New("invalid token")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrClientNotFound       = errors.New("client not found")
	ErrCaseNotFound         = errors.New("case not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrForbidden            = errors.New("access forbidden")
)
