package validation

import "errors"

var (
	// ErrInvalidSchema is returned when a JSON Schema cannot be compiled
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrSchemaNotFound is returned when a schema file does not exist
	ErrSchemaNotFound = errors.New("schema not found")
)
