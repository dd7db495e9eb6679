package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	assert.True(t, VerifyPassword("password123", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
	assert.False(t, VerifyPassword("password123", "not-a-bcrypt-hash"))
}

func TestGenerateJWT_Claims(t *testing.T) {
	svc := &UserService{jwtSecret: "test-secret-key"}

	signed, err := svc.GenerateJWT("alice@example.com", "Bronze")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, "Bronze", claims["badge"])
	assert.NotNil(t, claims["exp"])
}

func TestGenerateJWT_WrongSecretRejected(t *testing.T) {
	svc := &UserService{jwtSecret: "test-secret-key"}

	signed, err := svc.GenerateJWT("alice@example.com", "Bronze")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}
