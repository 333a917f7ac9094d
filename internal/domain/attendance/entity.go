package attendance

import (
	"fmt"
	"strings"
	"time"
)

// Shift identifies which work shift a session belongs to. Each shift maps to
// a configured cutoff time-of-day used when no approved overtime exists.
type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftNight     Shift = "Night"
)

// ParseShift normalizes a stored shift string into a Shift. The store layer
// is the only place this runs; everything past the boundary works with the
// typed value.
func ParseShift(s string) (Shift, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning":
		return ShiftMorning, nil
	case "afternoon":
		return ShiftAfternoon, nil
	case "night":
		return ShiftNight, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownShift, s)
	}
}

// Session statuses written by this service. The literal strings are part of
// the record contract with the rest of the system.
const (
	StatusCheckedIn        = "Checked In"
	StatusCheckedOut       = "Checked Out"
	StatusAutoCheckedOut   = "Auto Checked Out"
	StatusCheckedOutOTAuto = "Checked Out (OT Auto)"
)

// Session is one employee's attendance record for one calendar day.
// A session is open while CheckOut is nil; once closed it is never reopened
// or deleted by this service.
type Session struct {
	ID                    string
	EmployeeID            string
	Date                  time.Time // calendar day, midnight in the service timezone
	Shift                 Shift
	CheckIn               time.Time
	CheckOut              *time.Time
	OvertimeHours         float64
	OvertimeStart         *time.Time
	OvertimeEnd           *time.Time
	AutoCheckoutScheduled bool
	Status                string
	TotalHours            float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Open reports whether the session has not been checked out yet.
func (s Session) Open() bool {
	return s.CheckOut == nil
}
