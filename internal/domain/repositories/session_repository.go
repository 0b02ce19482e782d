package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrSessionStoreDisabled is returned by lookups when no backing store is reachable.
var ErrSessionStoreDisabled = errors.New("session store disabled")

// SessionRepository tracks issued session tokens so they can be revoked.
type SessionRepository interface {
	SetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	// GetToken returns "" when the token is unknown or expired.
	GetToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, token string) error
}
