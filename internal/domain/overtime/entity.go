package overtime

import (
	"fmt"
	"strings"
	"time"
)

// Status is the review state of an overtime request. Only Approved requests
// influence auto-checkout timing; Pending and Rejected are ignored.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus normalizes a stored status string. Historical records carry
// mixed casing ("approved" vs "Approved"), so the store boundary is the one
// place case-insensitive matching happens.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Request is an employee's overtime request for one calendar day.
type Request struct {
	ID            string
	EmployeeID    string
	Date          time.Time // calendar day, midnight in the service timezone
	OvertimeHours float64
	Status        Status
	ReviewedAt    *time.Time // set when status leaves Pending
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
