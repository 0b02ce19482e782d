package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	first, err := svc.GenerateToken("user-1")
	require.NoError(t, err)
	second, err := svc.GenerateToken("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "each session gets its own token")

	sub, err := svc.ParseToken(first)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestJWTServiceRejectsForeignAndExpiredTokens(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewJWTService("secret", time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("user-1")
	require.NoError(t, err)

	other := NewJWTService("other-secret", time.Hour)
	other.now = svc.now
	_, err = other.ParseToken(token)
	assert.Error(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.ParseToken(token)
	assert.Error(t, err)

	_, err = svc.ParseToken("not-a-token")
	assert.Error(t, err)
}
