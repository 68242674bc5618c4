package postgres

import (
	"context"

	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/internal/domain/repository"
)

type FollowRepository struct {
	db Querier
}

func NewFollowRepository(db Querier) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) Create(ctx context.Context, f *entity.Follow) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, f.FollowerID, f.FollowingID)

	return translateErr(row.Scan(&f.ID, &f.CreatedAt))
}

func (r *FollowRepository) Get(ctx context.Context, followerID, followingID int64) (*entity.Follow, error) {
	f := &entity.Follow{}
	row := r.db.QueryRow(ctx, `
		SELECT id, follower_id, following_id, created_at
		FROM follows
		WHERE follower_id = $1 AND following_id = $2
	`, followerID, followingID)

	if err := row.Scan(&f.ID, &f.FollowerID, &f.FollowingID, &f.CreatedAt); err != nil {
		return nil, translateErr(err)
	}
	return f, nil
}

var _ repository.FollowRepository = (*FollowRepository)(nil)
