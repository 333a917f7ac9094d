package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikko13/tigercookies-checkout/internal/domain/attendance"
)

func TestAttendanceRepository_FindOpenForDate(t *testing.T) {
	db := pgTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	today := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	empA := newEmployeeID()
	empB := newEmployeeID()
	empC := newEmployeeID()

	openID := insertTestSession(t, db, empA, today, "Morning", today.Add(9*time.Hour), nil)

	// Closed today: excluded by check_out IS NULL.
	closedAt := today.Add(17 * time.Hour)
	insertTestSession(t, db, empB, today, "Morning", today.Add(9*time.Hour), &closedAt)

	// Open but stale: excluded by date.
	insertTestSession(t, db, empC, yesterday, "Night", yesterday.Add(22*time.Hour), nil)

	sessions, err := repo.FindOpenForDate(ctx, today)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, openID, sessions[0].ID)
	assert.Equal(t, attendance.ShiftMorning, sessions[0].Shift)
	assert.True(t, sessions[0].Open())
}

func TestAttendanceRepository_FindStaleOpen(t *testing.T) {
	db := pgTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	today := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	staleID := insertTestSession(t, db, newEmployeeID(), yesterday, "Morning", yesterday.Add(9*time.Hour), nil)
	insertTestSession(t, db, newEmployeeID(), today, "Morning", today.Add(9*time.Hour), nil)

	stale, err := repo.FindStaleOpen(ctx, today)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, staleID, stale[0].ID)
}

func TestAttendanceRepository_ConditionalClose(t *testing.T) {
	db := pgTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	today := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	id := insertTestSession(t, db, newEmployeeID(), today, "Morning", today.Add(9*time.Hour), nil)

	checkOut := today.Add(18*time.Hour + time.Minute)

	// First close applies.
	result, err := repo.ConditionalClose(ctx, id, checkOut, attendance.StatusAutoCheckedOut, 9.02)
	require.NoError(t, err)
	assert.Equal(t, attendance.CloseApplied, result)

	var gotStatus string
	var gotHours float64
	var gotCheckOut *time.Time
	err = db.QueryRow(ctx, `
		SELECT status, total_hours, check_out FROM attendance_sessions WHERE id = $1
	`, id).Scan(&gotStatus, &gotHours, &gotCheckOut)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAutoCheckedOut, gotStatus)
	assert.Equal(t, 9.02, gotHours)
	require.NotNil(t, gotCheckOut)
	assert.True(t, gotCheckOut.Equal(checkOut))

	// Second close is a conflict, and must not overwrite the first.
	result, err = repo.ConditionalClose(ctx, id, checkOut.Add(time.Hour), attendance.StatusCheckedOutOTAuto, 10.02)
	require.NoError(t, err)
	assert.Equal(t, attendance.CloseConflict, result)

	err = db.QueryRow(ctx, `SELECT status FROM attendance_sessions WHERE id = $1`, id).Scan(&gotStatus)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAutoCheckedOut, gotStatus)

	// Unknown ID.
	result, err = repo.ConditionalClose(ctx, uuid.NewString(), checkOut, attendance.StatusAutoCheckedOut, 9.02)
	require.NoError(t, err)
	assert.Equal(t, attendance.CloseNotFound, result)
}

func TestAttendanceRepository_UnknownShiftSurvivesScan(t *testing.T) {
	db := pgTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()
	repo := NewAttendanceRepository(db)

	today := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	insertTestSession(t, db, newEmployeeID(), today, "Graveyard", today.Add(22*time.Hour), nil)

	// A bad shift value must not fail the whole sweep query; the decision
	// engine reports it as a skip instead.
	sessions, err := repo.FindOpenForDate(ctx, today)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, attendance.Shift("Graveyard"), sessions[0].Shift)
}
