package employee

import "context"

// EmployeeRepository is read-only here; the checkout service only resolves
// employee identities for notifications.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
