package repository

import (
	"context"

	"github.com/pulseline/pulseline/internal/domain/entity"
)

// UserRepository defines the persistence boundary for users.
type UserRepository interface {
	// Create inserts a new user and fills in ID and CreatedAt. Returns
	// errs.ErrAlreadyExists when email or username collides.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]entity.User, error)
	// Delete removes the user and, through store-level cascades, its
	// sessions, posts (with their comments and likes), given likes and
	// follow edges in one atomic statement.
	Delete(ctx context.Context, id int64) error
}
