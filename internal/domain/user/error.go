package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingField       = errors.New("username and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)
