package domain

import "errors"

var (
	ErrConnection     = errors.New("database connection failed")
	ErrWrite          = errors.New("write rejected")
	ErrRoutine        = errors.New("database routine failed")
	ErrValidation     = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
)
