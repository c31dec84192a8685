package auth

import (
	"fmt"
	"time"

	"orghub-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims: the user identity plus the
// registered issued-at/expiry fields. Token validity is purely a function
// of signature and clock; nothing is persisted server-side.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies bearer tokens. The signing secret and
// token lifetime are fixed at construction.
type AuthService struct {
	secret   []byte
	lifetime time.Duration
}

// NewAuthService creates a new token issuer/verifier.
func NewAuthService(secret string, lifetime time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if lifetime <= 0 {
		lifetime = 7 * 24 * time.Hour
	}
	return &AuthService{
		secret:   []byte(secret),
		lifetime: lifetime,
	}, nil
}

// GenerateJWT creates a signed compact token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a token. It fails for a wrong signing
// method, a bad signature, a malformed token, or a passed expiry.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// SubjectID parses the claim's user id back into a UUID.
func (c *AuthClaims) SubjectID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}
