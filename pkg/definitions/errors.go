package definitions

import "errors"

var (
	// ErrMalformedDocument is returned when a definition file cannot be parsed
	ErrMalformedDocument = errors.New("malformed definition document")

	// ErrEmptyDocument is returned when a definition file holds no document
	ErrEmptyDocument = errors.New("empty definition document")

	// ErrDirectoryNotFound is returned when the definitions directory is missing
	ErrDirectoryNotFound = errors.New("definitions directory not found")
)
