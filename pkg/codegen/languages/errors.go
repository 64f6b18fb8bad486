package languages

import "errors"

var (
	// ErrLanguageNotFound is returned when a language is not found in the registry
	ErrLanguageNotFound = errors.New("language not found")

	// ErrLanguageAlreadyExists is returned when trying to register a duplicate language
	ErrLanguageAlreadyExists = errors.New("language already exists")

	// ErrInvalidLanguageID is returned when a language ID is invalid
	ErrInvalidLanguageID = errors.New("invalid language ID")

	// ErrInvalidLanguageName is returned when a language name is invalid
	ErrInvalidLanguageName = errors.New("invalid language name")

	// ErrInvalidExtension is returned when a language has no file extension
	ErrInvalidExtension = errors.New("invalid file extension")

	// ErrMissingTemplate is returned when a language declares no way to emit codecs
	ErrMissingTemplate = errors.New("missing codec template")

	// ErrInvalidIgnorePattern is returned for a malformed ignore glob
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")
)
