package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrUnknownPage         = errors.New("unknown page")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)
