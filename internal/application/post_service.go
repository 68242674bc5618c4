package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/internal/domain/errs"
	repo "github.com/pulseline/pulseline/internal/domain/repository"
)

// PostService creates posts and comments and guards the like edge.
type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

func (s *PostService) Create(ctx context.Context, authorID int64, content string) (*entity.Post, error) {
	if _, err := s.Users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	p := &entity.Post{AuthorID: authorID, Content: content}
	if err := s.Posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) List(ctx context.Context, limit, offset int) ([]entity.Post, error) {
	return s.Posts.List(ctx, limit, offset)
}

func (s *PostService) AddComment(ctx context.Context, postID, authorID int64, content string) (*entity.Comment, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.Users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	c := &entity.Comment{PostID: postID, AuthorID: authorID, Content: content}
	if err := s.Posts.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddLike enforces at most one like per (post, user). The pre-check gives
// the fast path; when two identical requests race past it, the store's
// unique constraint rejects the second insert and the gateway reports the
// same errs.ErrAlreadyExists, so both paths look identical to the caller.
func (s *PostService) AddLike(ctx context.Context, postID, userID int64) (*entity.Like, error) {
	if _, err := s.Posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.Posts.GetLike(ctx, postID, userID); err == nil {
		return nil, errs.ErrAlreadyExists
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	l := &entity.Like{PostID: postID, UserID: userID}
	if err := s.Posts.AddLike(ctx, l); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"post_id": postID, "user_id": userID}).Debug("post liked")
	}
	return l, nil
}

// Delete removes a post; its comments and likes cascade with it.
func (s *PostService) Delete(ctx context.Context, postID int64) error {
	return s.Posts.Delete(ctx, postID)
}
