package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(1, "admin@x.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin@x.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_NonAdminClaims(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(2, "visitor@x.com", false)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
}

func TestJWTService_Expired(t *testing.T) {
	secret := "test-secret"
	service := NewJWTService(secret)

	// Correctly signed but already expired.
	claims := &Claims{
		UserID:  1,
		Email:   "admin@x.com",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-TokenExpiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("one-secret").GenerateToken(1, "admin@x.com", true)
	require.NoError(t, err)

	_, err = NewJWTService("another-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Malformed(t *testing.T) {
	service := NewJWTService("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.ValidateToken(token)
		assert.Error(t, err, "token %q should not validate", token)
	}
}

func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	service := NewJWTService("test-secret")

	claims := &Claims{
		UserID:  1,
		Email:   "admin@x.com",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
