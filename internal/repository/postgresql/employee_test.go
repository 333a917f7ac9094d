package postgresql

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikko13/tigercookies-checkout/internal/domain/employee"
)

func TestEmployeeRepository_GetByID(t *testing.T) {
	db := pgTestDB(t)
	truncateTables(t, db)
	ctx := context.Background()
	repo := NewEmployeeRepository(db)

	id := insertTestEmployee(t, db, "Maria", "Santos", "maria.santos@example.com")

	emp, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", emp.FullName())
	assert.Equal(t, "maria.santos@example.com", emp.Email)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
