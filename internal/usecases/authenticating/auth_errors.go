package authenticating

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")

	// ErrLoginDisabled is returned when no operator password hash is
	// configured; the dashboard then runs read-only.
	ErrLoginDisabled = errors.New("login disabled: no operator account configured")
)
