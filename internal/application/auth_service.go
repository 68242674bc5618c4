package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pulseline/pulseline/internal/domain/entity"
	"github.com/pulseline/pulseline/internal/domain/errs"
	repo "github.com/pulseline/pulseline/internal/domain/repository"
	"github.com/pulseline/pulseline/pkg/helpers"
)

// AuthService composes the credential codec, the token issuer and the store
// gateways into the register, login and authenticate flows.
type AuthService struct {
	Users      repo.UserRepository
	Sessions   repo.SessionRepository
	JWT        *helpers.JWTManager
	SessionTTL time.Duration
	Logger     *logrus.Logger
}

func NewAuthService(users repo.UserRepository, sessions repo.SessionRepository, jwt *helpers.JWTManager, sessionTTL time.Duration, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Sessions: sessions, JWT: jwt, SessionTTL: sessionTTL, Logger: logger}
}

// TokenPair carries both login artifacts: the stateless signed access token
// and the store-backed revocable session token.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	SessionToken     string
	SessionExpiresAt time.Time
}

// Register hashes the password and persists the user. Uniqueness of email
// and username is validated by attempting the insert; a collision surfaces
// as errs.ErrAlreadyExists from the store gateway, so two concurrent
// registrations resolve to exactly one user.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	}
	return u, nil
}

// Login verifies credentials and, on success, creates a session row and
// mints a fresh access token. Unknown email and wrong password collapse into
// the same errs.ErrInvalidCredentials. Prior sessions stay valid; multiple
// concurrent sessions per user are allowed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, TokenPair{}, errs.ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	if !helpers.VerifyPassword(password, u.PasswordHash) {
		return nil, TokenPair{}, errs.ErrInvalidCredentials
	}

	token, err := helpers.NewSessionToken()
	if err != nil {
		return nil, TokenPair{}, err
	}
	session := &entity.Session{
		UserID:    u.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.SessionTTL),
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, TokenPair{}, err
	}

	access, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return nil, TokenPair{}, err
	}

	pair := TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  exp,
		SessionToken:     session.Token,
		SessionExpiresAt: session.ExpiresAt,
	}
	return u, pair, nil
}

// Authenticate verifies a bearer access token without touching the session
// store and loads the subject user. Missing, malformed or expired tokens and
// deleted subjects all collapse into errs.ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errs.ErrUnauthenticated
	}
	userID, err := s.JWT.ParseAccessToken(token)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// A stateless token can outlive its subject until expiry.
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}
	return u, nil
}
