package utils

import "errors"

var (
	ErrMissingField       = errors.New("missing required field")
	ErrGuestNotFound      = errors.New("guest not found")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrAlreadyCheckedIn   = errors.New("guest already checked in")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrGatewayNotReady    = errors.New("whatsapp gateway not configured")
	ErrDatabaseError      = errors.New("database error")
)
