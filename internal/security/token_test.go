package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef0123456789"

func TestTokenManager_AccessToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 10080)

	token, err := tm.GenerateAccessToken(1, "ana@example.com", "user")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(1), claims.AccountID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, "user", claims.Role)
}

func TestTokenManager_RefreshToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 10080)

	token, err := tm.GenerateRefreshToken(2, "bo@example.com")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(2), claims.AccountID)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 10080)
	other := NewTokenManager("another-secret-0123456789abcdef01234", 60, 10080)

	token, err := tm.GenerateAccessToken(1, "ana@example.com", "user")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, 60, 10080)

	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
