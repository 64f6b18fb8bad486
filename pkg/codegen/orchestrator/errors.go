package orchestrator

import "errors"

var (
	// ErrLanguageNotSupported is returned when a language is not registered
	ErrLanguageNotSupported = errors.New("language not supported")

	// ErrLanguageDisabled is returned when a registered language is disabled
	ErrLanguageDisabled = errors.New("language disabled")

	// ErrNoLanguages is returned when EmitAll is called without languages
	ErrNoLanguages = errors.New("no languages specified")
)
