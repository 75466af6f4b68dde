package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService("test-secret-key-for-testing-purposes", 8*time.Hour)
}

func TestNewJWTService(t *testing.T) {
	service := newTestJWTService()
	assert.NotNil(t, service)
	assert.Equal(t, 8*time.Hour, service.TokenExpiry())
}

func TestJWTService_GenerateToken_Success(t *testing.T) {
	service := newTestJWTService()

	token, expiresAt, err := service.GenerateToken("barista")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))
	assert.True(t, expiresAt.Before(time.Now().Add(9*time.Hour)))
}

func TestJWTService_ValidateToken_Valid(t *testing.T) {
	service := newTestJWTService()

	token, _, err := service.GenerateToken("barista")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "barista", claims.Username)
	assert.Equal(t, "barista", claims.Subject)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := NewJWTService("test-secret", 1*time.Millisecond)

	token, _, err := service.GenerateToken("barista")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	service := newTestJWTService()

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"random string", "not-a-valid-token"},
		{"malformed JWT", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_ValidateToken_WrongSignature(t *testing.T) {
	service1 := NewJWTService("secret-key-1", 8*time.Hour)
	service2 := NewJWTService("secret-key-2", 8*time.Hour)

	token, _, err := service1.GenerateToken("barista")
	require.NoError(t, err)

	claims, err := service2.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
