package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrLimitExceeded      = errors.New("limit exceeded")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRefreshInFlight    = errors.New("refresh already in flight")
	ErrUnsupportedBoard   = errors.New("unsupported board identifier")
	ErrInternal           = errors.New("internal error")
)
