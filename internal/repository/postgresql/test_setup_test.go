package postgresql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mikko13/tigercookies-checkout/internal/domain/attendance"
	"github.com/mikko13/tigercookies-checkout/internal/pkg/database"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS employees (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL,
	shift TEXT NOT NULL DEFAULT 'Morning',
	is_active BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendance_sessions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL,
	date DATE NOT NULL,
	shift TEXT NOT NULL,
	check_in TIMESTAMPTZ NOT NULL,
	check_out TIMESTAMPTZ,
	overtime_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
	overtime_start TIMESTAMPTZ,
	overtime_end TIMESTAMPTZ,
	auto_checkout_scheduled BOOLEAN NOT NULL DEFAULT false,
	status TEXT NOT NULL,
	total_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (employee_id, date)
);

CREATE TABLE IF NOT EXISTS overtime_requests (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL,
	date DATE NOT NULL,
	overtime_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'Pending',
	reviewed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// pgTestDB connects to the integration database, bootstrapping the schema.
// Tests are skipped when TEST_DATABASE_URL is not set.
func pgTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres integration tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(context.Background(), testSchema)
	require.NoError(t, err)

	return db
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()
	for _, table := range []string{"attendance_sessions", "overtime_requests", "employees"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func insertTestEmployee(t *testing.T, db *database.DB, firstName, lastName, email string) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO employees (first_name, last_name, email, shift)
		VALUES ($1, $2, $3, 'Morning')
		RETURNING id
	`, firstName, lastName, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertTestSession(t *testing.T, db *database.DB, employeeID string, date time.Time, shift string, checkIn time.Time, checkOut *time.Time) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO attendance_sessions (employee_id, date, shift, check_in, check_out, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, employeeID, date, shift, checkIn, checkOut, attendance.StatusCheckedIn).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertTestOvertime(t *testing.T, db *database.DB, employeeID string, date time.Time, hours float64, status string, reviewedAt *time.Time) string {
	t.Helper()
	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO overtime_requests (employee_id, date, overtime_hours, status, reviewed_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, employeeID, date, hours, status, reviewedAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func newEmployeeID() string {
	return uuid.NewString()
}
