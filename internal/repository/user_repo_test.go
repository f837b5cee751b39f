package repository

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-tracker/internal/model"
	"job-tracker/pkg/apierror"
)

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserRepository(mockPool)

	mockPool.ExpectQuery(`FROM users WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("a@x.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepository_FindByID_Found(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserRepository(mockPool)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockPool.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "email", "password_hash", "created_at", "updated_at",
		}).AddRow(ownerID, "A", "a@x.com", "hash", now, now))

	u, err := repo.FindByID(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "hash", u.PasswordHash)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	repo := NewUserRepository(mockPool)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := model.User{
		ID: ownerID, Name: "A", Email: "a@x.com", PasswordHash: "hash",
		CreatedAt: now, UpdatedAt: now,
	}

	mockPool.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err = repo.Create(context.Background(), u)
	require.Error(t, err)

	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already registered", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)

	assert.NoError(t, mockPool.ExpectationsWereMet())
}
