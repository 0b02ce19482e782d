package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewValidatedUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "alice", "Alice@Example.com ", "secret", false},
		{"missing username", "  ", "alice@example.com", "secret", true},
		{"missing email", "alice", "", "secret", true},
		{"malformed email", "alice", "alice.example.com", "secret", true},
		{"missing password", "alice", "alice@example.com", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vu, err := NewValidatedUser(NewUser(tt.username, tt.email, tt.password))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", vu.GetUser().Email)
		})
	}
}

func TestUserPassword(t *testing.T) {
	u := NewUser("alice", "alice@example.com", "secret")
	require.NoError(t, u.HashPassword())

	assert.NotEqual(t, "secret", u.Password)
	assert.NoError(t, u.CheckPassword("secret"))
	assert.Error(t, u.CheckPassword("wrong"))

	require.NoError(t, u.SetPassword("changed"))
	assert.NoError(t, u.CheckPassword("changed"))
	assert.Error(t, u.CheckPassword("secret"))
	assert.Error(t, u.SetPassword(""))
}

func TestResetTokenValid(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	u := NewUser("alice", "alice@example.com", "secret")
	u.SetResetToken("abc123", now.Add(time.Hour))

	assert.True(t, u.ResetTokenValid("abc123", now))
	assert.True(t, u.ResetTokenValid("abc123", now.Add(59*time.Minute)))
	assert.False(t, u.ResetTokenValid("abc123", now.Add(time.Hour)), "expiry instant is not before expiry")
	assert.False(t, u.ResetTokenValid("abc123", now.Add(2*time.Hour)))
	assert.False(t, u.ResetTokenValid("other", now))
	assert.False(t, u.ResetTokenValid("", now))

	u.ClearResetToken()
	assert.False(t, u.ResetTokenValid("abc123", now))
	assert.True(t, u.ResetPasswordExpires.IsZero())
}

func TestUserFollowerLookup(t *testing.T) {
	u := NewUser("alice", "alice@example.com", "secret")
	bob := primitive.NewObjectID()
	u.Followers = append(u.Followers, bob)

	assert.True(t, u.HasFollower(bob))
	assert.False(t, u.HasFollower(primitive.NewObjectID()))
}

func TestFullName(t *testing.T) {
	u := NewUser("alice", "alice@example.com", "secret")
	assert.Equal(t, "", u.FullName())
	require.NoError(t, u.UpdateProfile("Alice", " Liddell ", ""))
	assert.Equal(t, "Alice Liddell", u.FullName())
}
