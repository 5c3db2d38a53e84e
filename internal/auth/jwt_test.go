package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	require.NoError(t, InitJWT("test-secret", 1))

	tokenString, err := GenerateJWT(42, "jake@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := VerifyJWT(tokenString)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "jake@example.com", claims["email"])
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	require.NoError(t, InitJWT("test-secret", 1))

	_, err := VerifyJWT("not-a-token")
	assert.Error(t, err)
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	require.NoError(t, InitJWT("first-secret", 1))

	tokenString, err := GenerateJWT(1, "a@example.com")
	require.NoError(t, err)

	require.NoError(t, InitJWT("second-secret", 1))

	_, err = VerifyJWT(tokenString)
	assert.Error(t, err)
}

func TestInitJWTRequiresSecret(t *testing.T) {
	assert.Error(t, InitJWT("", 1))
}
