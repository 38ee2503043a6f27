package domain

import "errors"

var (
	// ErrProjectNotFound is returned both when an id does not exist and when
	// the viewer is not allowed to see the record. Callers must not be able
	// to tell the two apart.
	ErrProjectNotFound = errors.New("project not found")

	// ErrUnauthorized is returned when an acting identity is not listed as
	// an author of the record it tries to mutate.
	ErrUnauthorized = errors.New("identity is not an author of this project")
)
