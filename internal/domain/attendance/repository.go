package attendance

import (
	"context"
	"time"
)

// CloseResult reports what a conditional close did at the store.
type CloseResult int

const (
	// CloseApplied means the session was open and is now closed.
	CloseApplied CloseResult = iota
	// CloseConflict means the session was already closed when the update ran,
	// typically because a manual checkout won the race. Callers treat this as
	// a success-no-op.
	CloseConflict
	// CloseNotFound means no session with that ID exists.
	CloseNotFound
)

func (r CloseResult) String() string {
	switch r {
	case CloseApplied:
		return "applied"
	case CloseConflict:
		return "conflict"
	case CloseNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// AttendanceRepository defines the data access the checkout service needs.
// The store is externally owned: this service only reads open sessions and
// closes them, never creates, reopens, or deletes.
type AttendanceRepository interface {
	// FindOpenForDate retrieves all open sessions dated exactly `date`.
	// Open sessions from earlier dates are deliberately excluded; they are
	// anomalies handled by FindStaleOpen, never auto-closed.
	FindOpenForDate(ctx context.Context, date time.Time) ([]Session, error)

	// ConditionalClose sets checkout fields only if the session is still open
	// ("... WHERE check_out IS NULL"). This is the compare-and-set that keeps
	// the sweep from overwriting a manual checkout that landed between the
	// sweep's read and write.
	ConditionalClose(ctx context.Context, id string, checkOut time.Time, status string, totalHours float64) (CloseResult, error)

	// FindStaleOpen retrieves open sessions dated before `before`, for
	// anomaly reporting only.
	FindStaleOpen(ctx context.Context, before time.Time) ([]Session, error)
}
