package helpers

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pulseline/pulseline/internal/domain/errs"
)

const accessTokenType = "access"

// JWTManager issues and verifies self-contained HS256 access tokens.
// Verification is stateless: any process holding the secret can verify a
// token without a store lookup.
type JWTManager struct {
	Secret    []byte
	AccessTTL time.Duration
}

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), AccessTTL: accessTTL}
}

type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken mints a token with subject userID, expiring AccessTTL
// from now.
func (m *JWTManager) GenerateAccessToken(userID int64) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.AccessTTL)
	claims := &Claims{
		Type: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseAccessToken verifies signature, expiry and token type, and returns
// the subject user ID. It fails with errs.ErrTokenExpired past expiry and
// errs.ErrTokenInvalid for every other defect.
func (m *JWTManager) ParseAccessToken(tokenStr string) (int64, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, errs.ErrTokenExpired
		}
		return 0, errs.ErrTokenInvalid
	}
	if !tkn.Valid || claims.Type != accessTokenType {
		return 0, errs.ErrTokenInvalid
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errs.ErrTokenInvalid
	}
	return userID, nil
}
