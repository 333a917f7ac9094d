package notification

import (
	"context"
	"time"
)

// Notifier is the fire-and-forget collaborator told about auto-checkouts.
// Implementations must never be allowed to roll back or block the persisted
// state change: callers invoke it only after a successful close, and treat
// errors as log-only.
type Notifier interface {
	NotifyAutoCheckout(ctx context.Context, employeeID string, checkOut time.Time, status string) error
}
