package auth

import (
	"testing"
	"time"

	"orghub-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "john.doe@example.com",
		Name:      "John Doe",
	}
}

func TestNewAuthService(t *testing.T) {
	t.Run("requires a secret", func(t *testing.T) {
		svc, err := NewAuthService("", time.Hour)
		assert.Error(t, err)
		assert.Nil(t, svc)
	})

	t.Run("defaults lifetime to 7 days", func(t *testing.T) {
		svc, err := NewAuthService("test-secret", 0)
		require.NoError(t, err)
		assert.Equal(t, 7*24*time.Hour, svc.lifetime)
	})
}

func TestAuthService_RoundTrip(t *testing.T) {
	svc, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)

	user := testUser()
	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestAuthService_ExpiryClaims(t *testing.T) {
	svc, err := NewAuthService("test-secret", 2*time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateJWT(testUser())
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)

	// expiry = issued-at + configured lifetime, second granularity
	issued := claims.IssuedAt.Time
	expires := claims.ExpiresAt.Time
	assert.Equal(t, 2*time.Hour, expires.Sub(issued))
	assert.WithinDuration(t, time.Now(), issued, 5*time.Second)
}

func TestAuthService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)
	svc.lifetime = -time.Minute

	token, err := svc.GenerateJWT(testUser())
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewAuthService("issuer-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := NewAuthService("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateJWT(testUser())
	require.NoError(t, err)

	claims, err := verifier.ValidateJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_RejectsMalformedToken(t *testing.T) {
	svc, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9"} {
		claims, err := svc.ValidateJWT(token)
		assert.Error(t, err, "token %q should be rejected", token)
		assert.Nil(t, claims)
	}
}

func TestAuthService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateJWT(testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := svc.ValidateJWT(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
