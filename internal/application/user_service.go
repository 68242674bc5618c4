package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/internal/domain/errs"
	repo "github.com/pulseline/pulseline/internal/domain/repository"
)

// UserService lists users and guards the follow edge.
type UserService struct {
	Users   repo.UserRepository
	Follows repo.FollowRepository
	Logger  *logrus.Logger
}

func NewUserService(users repo.UserRepository, follows repo.FollowRepository, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Follows: follows, Logger: logger}
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return s.Users.List(ctx, limit, offset)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return s.Users.GetByID(ctx, id)
}

// Follow enforces the self-follow prohibition and at most one edge per
// (follower, following). The self check runs before any store access, so it
// fails the same way whether or not the user exists. Duplicate edges lose
// the same way pre-check or race: errs.ErrAlreadyExists.
func (s *UserService) Follow(ctx context.Context, followerID, followingID int64) (*entity.Follow, error) {
	if followerID == followingID {
		return nil, errs.ErrSelfFollow
	}
	if _, err := s.Users.GetByID(ctx, followerID); err != nil {
		return nil, err
	}
	if _, err := s.Users.GetByID(ctx, followingID); err != nil {
		return nil, err
	}
	if _, err := s.Follows.Get(ctx, followerID, followingID); err == nil {
		return nil, errs.ErrAlreadyExists
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	f := &entity.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.Follows.Create(ctx, f); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"follower_id": followerID, "following_id": followingID}).Debug("follow created")
	}
	return f, nil
}

// Delete removes a user; sessions, posts, comments, likes and follow edges
// referencing them cascade with it.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return s.Users.Delete(ctx, userID)
}
