package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mikko13/tigercookies-checkout/internal/domain/attendance"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const sessionColumns = `
	id, employee_id, date, shift, check_in, check_out,
	overtime_hours, overtime_start, overtime_end,
	auto_checkout_scheduled, status, total_hours,
	created_at, updated_at
`

// FindOpenForDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) FindOpenForDate(ctx context.Context, date time.Time) ([]attendance.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE date = $1
		  AND check_out IS NULL
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query open sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// FindStaleOpen implements attendance.AttendanceRepository.
func (r *attendanceRepository) FindStaleOpen(ctx context.Context, before time.Time) ([]attendance.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE date < $1
		  AND check_out IS NULL
		ORDER BY date, check_in
	`

	rows, err := r.db.Query(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale open sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ConditionalClose implements attendance.AttendanceRepository. The check_out
// IS NULL predicate is the compare-and-set: a manual checkout that committed
// after the sweep's read makes this update match zero rows.
func (r *attendanceRepository) ConditionalClose(ctx context.Context, id string, checkOut time.Time, status string, totalHours float64) (attendance.CloseResult, error) {
	query := `
		UPDATE attendance_sessions
		SET check_out = $2,
			status = $3,
			total_hours = $4,
			auto_checkout_scheduled = false,
			updated_at = NOW()
		WHERE id = $1
		  AND check_out IS NULL
	`

	tag, err := r.db.Exec(ctx, query, id, checkOut, status, totalHours)
	if err != nil {
		return attendance.CloseNotFound, fmt.Errorf("failed to close session: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return attendance.CloseApplied, nil
	}

	// Zero rows: the session is either already closed or gone.
	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendance_sessions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return attendance.CloseNotFound, fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists {
		return attendance.CloseConflict, nil
	}
	return attendance.CloseNotFound, nil
}

func scanSessions(rows pgx.Rows) ([]attendance.Session, error) {
	var sessions []attendance.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return sessions, nil
}

func scanSession(row pgx.Row) (attendance.Session, error) {
	var session attendance.Session
	var rawShift string

	err := row.Scan(
		&session.ID, &session.EmployeeID, &session.Date, &rawShift,
		&session.CheckIn, &session.CheckOut,
		&session.OvertimeHours, &session.OvertimeStart, &session.OvertimeEnd,
		&session.AutoCheckoutScheduled, &session.Status, &session.TotalHours,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		return attendance.Session{}, fmt.Errorf("failed to scan session: %w", err)
	}

	shift, err := attendance.ParseShift(rawShift)
	if err != nil {
		if errors.Is(err, attendance.ErrUnknownShift) {
			// Keep the raw value so the decision engine can report the
			// missing-policy skip instead of the whole sweep failing.
			slog.Warn("Attendance session has unrecognized shift", "session_id", session.ID, "shift", rawShift)
			session.Shift = attendance.Shift(rawShift)
			return session, nil
		}
		return attendance.Session{}, err
	}
	session.Shift = shift
	return session, nil
}
