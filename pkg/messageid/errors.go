package messageid

import "errors"

var (
	// ErrIDOutOfRange is returned when a service, method or message kind id does
	// not fit in one byte
	ErrIDOutOfRange = errors.New("message id component out of range")
)
