package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrValidation    = errors.New("validation error")
	ErrStorage       = errors.New("storage failure")
)
