package workout

import "errors"

var (
	ErrMissingType     = errors.New("workout type is required")
	ErrMissingField    = errors.New("duration and calories are required")
	ErrInvalidNumber   = errors.New("duration and calories must be valid numbers")
	ErrInvalidDuration = errors.New("duration must be greater than 0")
	ErrInvalidCalories = errors.New("calories cannot be negative")
	ErrNotFound        = errors.New("workout not found")
)
