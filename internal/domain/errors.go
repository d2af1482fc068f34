package domain

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrProviderFailure = errors.New("provider failure")
)
