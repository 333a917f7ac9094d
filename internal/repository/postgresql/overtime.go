package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mikko13/tigercookies-checkout/internal/domain/overtime"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

// FindApproved implements overtime.OvertimeRepository. Status matching is
// case-insensitive because historical rows carry mixed casing.
func (r *overtimeRepository) FindApproved(ctx context.Context, employeeID string, date time.Time) (*overtime.Request, error) {
	query := `
		SELECT id, employee_id, date, overtime_hours, status, reviewed_at, created_at, updated_at
		FROM overtime_requests
		WHERE employee_id = $1
		  AND date = $2
		  AND LOWER(status) = 'approved'
		ORDER BY reviewed_at DESC
		LIMIT 1
	`

	var req overtime.Request
	var rawStatus string
	err := r.db.QueryRow(ctx, query, employeeID, date).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.OvertimeHours,
		&rawStatus, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no approved overtime for this date
		}
		return nil, fmt.Errorf("failed to get approved overtime: %w", err)
	}

	status, err := overtime.ParseStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("overtime request %s: %w", req.ID, err)
	}
	req.Status = status

	return &req, nil
}
