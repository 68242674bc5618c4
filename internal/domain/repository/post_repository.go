package repository

import (
	"context"

	"github.com/pulseline/pulseline/internal/domain/entity"
)

// PostRepository persists posts and their owned comments and likes.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context, limit, offset int) ([]entity.Post, error)
	AddComment(ctx context.Context, c *entity.Comment) error
	// AddLike inserts a like edge. Returns errs.ErrAlreadyExists when the
	// (post, user) pair is already present, which is how a lost
	// check-then-insert race surfaces.
	AddLike(ctx context.Context, l *entity.Like) error
	GetLike(ctx context.Context, postID, userID int64) (*entity.Like, error)
	// Delete removes the post and cascades its comments and likes.
	Delete(ctx context.Context, id int64) error
}
