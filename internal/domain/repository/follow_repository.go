package repository

import (
	"context"

	"github.com/pulseline/pulseline/internal/domain/entity"
)

// FollowRepository persists directed follow edges.
type FollowRepository interface {
	// Create inserts a follow edge. Returns errs.ErrAlreadyExists on a
	// duplicate (follower, following) pair.
	Create(ctx context.Context, f *entity.Follow) error
	Get(ctx context.Context, followerID, followingID int64) (*entity.Follow, error)
}
