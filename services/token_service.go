package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campus-backend/models"
)

// Sessions are stateless: a token cannot be revoked before it expires.
const tokenValidity = 7 * 24 * time.Hour

// TokenService signs and verifies the bearer tokens carrying identity and
// role. The secret is process-wide configuration, injected at construction.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret must not be empty")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Generate creates a signed token embedding the user's id and role
func (s *TokenService) Generate(id, role string) (string, error) {
	now := time.Now()

	claims := models.Claims{
		ID:   id,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a token string. It is a pure check: no
// store access, no side effects.
func (s *TokenService) Validate(tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*models.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
