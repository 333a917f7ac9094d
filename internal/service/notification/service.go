package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mikko13/tigercookies-checkout/internal/domain/employee"
	domain "github.com/mikko13/tigercookies-checkout/internal/domain/notification"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/clock"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/email"
)

// emailNotifier resolves the employee and emails them about the auto
// checkout. It implements notification.Notifier.
type emailNotifier struct {
	employeeRepo employee.EmployeeRepository
	emailSvc     email.EmailService
}

func NewEmailNotifier(employeeRepo employee.EmployeeRepository, emailSvc email.EmailService) domain.Notifier {
	return &emailNotifier{
		employeeRepo: employeeRepo,
		emailSvc:     emailSvc,
	}
}

// NotifyAutoCheckout sends the auto-checkout email. Callers treat the return
// error as log-only; nothing downstream depends on delivery.
func (n *emailNotifier) NotifyAutoCheckout(ctx context.Context, employeeID string, checkOut time.Time, status string) error {
	emp, err := n.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("resolve employee %s: %w", employeeID, err)
	}
	if emp.Email == "" {
		slog.Warn("Employee has no email, skipping auto-checkout notification", "employee_id", employeeID)
		return nil
	}

	date := clock.DateOf(checkOut)
	if err := n.emailSvc.SendAutoCheckout(emp.Email, emp.FullName(), date, checkOut, status); err != nil {
		return fmt.Errorf("send auto-checkout email to %s: %w", emp.Email, err)
	}
	return nil
}
