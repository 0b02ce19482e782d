package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "yelpcamp", cfg.Store.Database)
	assert.Equal(t, "log", cfg.Mail.Provider)
	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 20, cfg.Limits.Burst)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("IP", "127.0.0.1")
	t.Setenv("STORE", "memory")
	t.Setenv("ADMIN_CODE", "letmein")
	t.Setenv("RESET_TOKEN_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr())
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "letmein", cfg.AdminCode)
	assert.Equal(t, 30*time.Minute, cfg.ResetTokenTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown store", "STORE", "postgres"},
		{"unknown mail provider", "MAIL_PROVIDER", "pigeon"},
		{"sendgrid without key", "MAIL_PROVIDER", "sendgrid"},
		{"zero session ttl", "SESSION_TTL", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EMAIL_API_KEY", "")
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
