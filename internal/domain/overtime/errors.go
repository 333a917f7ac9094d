package overtime

import "errors"

// Overtime domain errors
var (
	ErrRequestNotFound = errors.New("overtime request not found")
	ErrUnknownStatus   = errors.New("unknown overtime status")
)
