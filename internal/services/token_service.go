package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mrosati84/DetectiveBoard/internal/constants"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// TokenService issues and validates stateless HS256 session tokens. Tokens
// stay valid until their natural expiry; there is no revocation list.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a new TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		lifetime: constants.TokenLifetime,
	}
}

// Issue produces a signed token embedding the user id, expiring 30 days out.
func (s *TokenService) Issue(userID uint64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature and expiry and returns the embedded user id.
func (s *TokenService) Validate(tokenString string) (uint64, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}

	return userID, nil
}
