package repository

import (
	"context"

	"github.com/pulseline/pulseline/internal/domain/entity"
)

// SessionRepository persists revocable login sessions.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	// GetByToken resolves a session by exact token match. Returns
	// errs.ErrNotFound for unknown (including revoked) tokens.
	GetByToken(ctx context.Context, token string) (*entity.Session, error)
}
