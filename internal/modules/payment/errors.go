package payment

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrCardNotFound = errors.New("card not found")
)
