package version

import "errors"

var (
	// ErrInvalidVersion is returned when a since value is not a dotted version
	ErrInvalidVersion = errors.New("invalid version")

	// ErrComponentOutOfRange is returned when a minor or patch component does not fit its slot
	ErrComponentOutOfRange = errors.New("version component out of range")
)
