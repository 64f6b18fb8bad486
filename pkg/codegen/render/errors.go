package render

import "errors"

var (
	// ErrUnsupportedType is returned when a parameter type has no mapping in the
	// target language. It only affects the artifact being rendered.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrTemplateNotFound is returned when a language has no template of a name
	ErrTemplateNotFound = errors.New("template not found")

	// ErrUnknownLanguage is returned for a language without template helpers
	ErrUnknownLanguage = errors.New("unknown language")
)
