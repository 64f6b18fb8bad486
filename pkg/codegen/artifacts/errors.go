package artifacts

import "errors"

var (
	// ErrWriteFailed is returned when an artifact cannot be written
	ErrWriteFailed = errors.New("artifact write failed")

	// ErrChecksumMismatch is returned when an artifact's embedded hash does not
	// match its content
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidMode is returned for an unknown write mode
	ErrInvalidMode = errors.New("invalid write mode")
)
