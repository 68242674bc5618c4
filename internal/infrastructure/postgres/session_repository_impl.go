package postgres

import (
	"context"

	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/internal/domain/repository"
)

type SessionRepository struct {
	db Querier
}

func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.Session) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO sessions (user_id, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, s.UserID, s.Token, s.ExpiresAt)

	return translateErr(row.Scan(&s.ID, &s.CreatedAt))
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	s := &entity.Session{}
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, token, expires_at, created_at
		FROM sessions
		WHERE token = $1
	`, token)

	if err := row.Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.CreatedAt); err != nil {
		return nil, translateErr(err)
	}
	return s, nil
}

var _ repository.SessionRepository = (*SessionRepository)(nil)
