package overtime

import (
	"context"
	"time"
)

// OvertimeRepository is read-only from the checkout service's perspective;
// approvals are written by the admin review flow, not here.
type OvertimeRepository interface {
	// FindApproved retrieves the approved overtime request for an employee on
	// a date, or (nil, nil) when there is none. At most one approved request
	// exists per (employee, date).
	FindApproved(ctx context.Context, employeeID string, date time.Time) (*Request, error)
}
