package review

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrMasterNotFound  = errors.New("master not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrNotFound        = errors.New("review not found")
	ErrConflict        = errors.New("review already exists")
)
