package attendance

import "errors"

// Attendance domain errors
var (
	ErrSessionNotFound = errors.New("attendance session not found")
	ErrUnknownShift    = errors.New("unknown shift")
)
