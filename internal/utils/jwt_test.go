package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken("secret", userID, "claire@example.com", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)

	assert.Equal(t, "claire@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	parsedID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), "a@b.fr", "user", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", uuid.New(), "a@b.fr", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("secret", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	assert.Error(t, err)
}
