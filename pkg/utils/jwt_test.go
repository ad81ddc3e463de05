package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret", 15*time.Minute, time.Hour)

	token, err := GenerateAccessToken(42, "doctor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.PrincipalID)
	assert.Equal(t, "doctor", claims.PrincipalType)
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-one", 15*time.Minute, time.Hour)
	token, err := GenerateAccessToken(7, "patient")
	require.NoError(t, err)

	InitJWT("secret-two", 15*time.Minute, time.Hour)
	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenExpiry(t *testing.T) {
	InitJWT("test-secret", -time.Minute, time.Hour)
	token, err := GenerateAccessToken(7, "patient")
	require.NoError(t, err)

	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestHashRefreshToken(t *testing.T) {
	h1 := HashRefreshToken("some-token")
	h2 := HashRefreshToken("some-token")
	h3 := HashRefreshToken("other-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64) // hex-encoded sha256
}
