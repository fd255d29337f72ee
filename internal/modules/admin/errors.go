package admin

import "errors"

var (
	ErrNotFound   = errors.New("submission not found")
	ErrValidation = errors.New("validation error")
)
