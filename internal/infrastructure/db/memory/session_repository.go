package memory

import (
	"context"
	"time"

	"yelpcamp/internal/domain/repositories"
)

type session struct {
	userID  string
	expires time.Time
}

type SessionRepository struct {
	store *Store
	now   func() time.Time
}

func NewSessionRepository(store *Store) repositories.SessionRepository {
	return &SessionRepository{store: store, now: time.Now}
}

func (r *SessionRepository) SetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sessions[token] = session{userID: userID, expires: r.now().Add(ttl)}
	return nil
}

func (r *SessionRepository) GetToken(ctx context.Context, token string) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.sessions[token]
	if !ok {
		return "", nil
	}
	if !r.now().Before(s.expires) {
		delete(r.store.sessions, token)
		return "", nil
	}
	return s.userID, nil
}

func (r *SessionRepository) DeleteToken(ctx context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sessions, token)
	return nil
}
