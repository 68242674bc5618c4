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

func TestFollowRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewFollowRepository(mock)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO follows`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	f := &entity.Follow{FollowerID: 1, FollowingID: 2}
	require.NoError(t, repo.Create(context.Background(), f))
	assert.Equal(t, int64(3), f.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Create_UniqueViolation(t *testing.T) {
	mock := newMock(t)
	repo := NewFollowRepository(mock)

	mock.ExpectQuery(`INSERT INTO follows`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "uq_follow_pair"})

	f := &entity.Follow{FollowerID: 1, FollowingID: 2}
	err := repo.Create(context.Background(), f)
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Get(t *testing.T) {
	mock := newMock(t)
	repo := NewFollowRepository(mock)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, follower_id, following_id, created_at`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "follower_id", "following_id", "created_at"}).
			AddRow(int64(3), int64(1), int64(2), now))

	f, err := repo.Get(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), f.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowRepository_Get_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewFollowRepository(mock)

	mock.ExpectQuery(`SELECT id, follower_id, following_id, created_at`).
		WithArgs(int64(2), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "follower_id", "following_id", "created_at"}))

	_, err := repo.Get(context.Background(), 2, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
