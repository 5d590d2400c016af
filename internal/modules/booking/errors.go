package booking

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrMasterNotFound = errors.New("master not found")
	ErrSlotTaken      = errors.New("slot already booked")
	ErrNotFound       = errors.New("appointment not found")
)
