package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/internal/domain/errs"
)

func TestSessionRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock)

	now := time.Now()
	expires := now.Add(168 * time.Hour)
	mock.ExpectQuery(`INSERT INTO sessions`).
		WithArgs(int64(1), "opaque-token", expires).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(4), now))

	s := &entity.Session{UserID: 1, Token: "opaque-token", ExpiresAt: expires}
	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, int64(4), s.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Create_TokenCollision(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock)

	mock.ExpectQuery(`INSERT INTO sessions`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "ix_sessions_token"})

	s := &entity.Session{UserID: 1, Token: "opaque-token", ExpiresAt: time.Now().Add(time.Hour)}
	err := repo.Create(context.Background(), s)
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetByToken(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, user_id, token, expires_at, created_at`).
		WithArgs("opaque-token").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token", "expires_at", "created_at"}).
			AddRow(int64(4), int64(1), "opaque-token", now.Add(time.Hour), now))

	s, err := repo.GetByToken(context.Background(), "opaque-token")
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A revoked (deleted) session is indistinguishable from one that never
// existed.
func TestSessionRepository_GetByToken_Revoked(t *testing.T) {
	mock := newMock(t)
	repo := NewSessionRepository(mock)

	mock.ExpectQuery(`SELECT id, user_id, token, expires_at, created_at`).
		WithArgs("revoked-token").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "token", "expires_at", "created_at"}))

	_, err := repo.GetByToken(context.Background(), "revoked-token")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
