package employee

import "time"

// Employee carries the subset of the employee record the checkout service
// needs: identity and where to send notifications. Account management lives
// elsewhere.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Shift     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used in notification emails.
func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
