package domain

import "errors"

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidStatus   = errors.New("invalid student status")
)
