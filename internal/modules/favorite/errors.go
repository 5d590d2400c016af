package favorite

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("master already in favorites")
	ErrNotFound   = errors.New("favorite not found")
)
