package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateAndValidateTokens(t *testing.T) {
	accessToken, refreshToken, err := GenerateTokens("user-1", "member@example.com", "member", "test-secret", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	claims, err := ValidateToken(accessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "member@example.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "access", claims.TokenType)

	refreshClaims, err := ValidateToken(refreshToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	accessToken, err := GenerateAccessToken("user-1", "member@example.com", "member", "test-secret")
	require.NoError(t, err)

	claims, err := ValidateToken(accessToken, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_EmptySecret(t *testing.T) {
	_, err := GenerateAccessToken("user-1", "member@example.com", "member", "")
	assert.Equal(t, ErrEmptyJWTSecret, err)

	_, err = ValidateToken("whatever", "")
	assert.Equal(t, ErrEmptyJWTSecret, err)
}

func TestRefreshAccessToken(t *testing.T) {
	_, refreshToken, err := GenerateTokens("user-1", "member@example.com", "member", "test-secret", "refresh-secret")
	require.NoError(t, err)

	newAccess, claims, err := RefreshAccessToken(refreshToken, "refresh-secret", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, newAccess)
	assert.Equal(t, "user-1", claims.UserID)

	validated, err := ValidateToken(newAccess, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "access", validated.TokenType)
}

func TestRefreshAccessToken_RejectsAccessToken(t *testing.T) {
	accessToken, err := GenerateAccessToken("user-1", "member@example.com", "member", "test-secret")
	require.NoError(t, err)

	_, _, err = RefreshAccessToken(accessToken, "test-secret", "test-secret")
	assert.Equal(t, ErrInvalidTokenType, err)
}
