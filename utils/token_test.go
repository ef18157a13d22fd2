package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("editor@example.com", "editor", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "editor@example.com", claims.Name)
	assert.Equal(t, "editor", claims.Role)
	assert.Equal(t, "editor@example.com", claims.Subject)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("editor@example.com", "editor", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("editor@example.com", "editor", time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := VerifyToken("not.a.token")
	assert.Error(t, err)
}
