package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerateAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	value, exp, err := tm.Generate(42, "sid-123")
	require.NoError(t, err)
	require.NotEmpty(t, value)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.Parse(value)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", claims.SessionID)

	uid, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}

func TestTokenParseRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	value, _, err := other.Generate(42, "sid-123")
	require.NoError(t, err)

	_, err = tm.Parse(value)
	assert.Error(t, err)
}

func TestTokenParseRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	value, _, err := tm.Generate(42, "sid-123")
	require.NoError(t, err)

	_, err = tm.Parse(value)
	assert.Error(t, err)
}

func TestTokenParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.Parse("not-a-jwt")
	assert.Error(t, err)
}
