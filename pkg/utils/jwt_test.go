package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateToken("staff@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff@example.com", claims.Subject)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := CreateToken("staff@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
