package memory

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Username == userEntity.Username || u.Email == userEntity.Email {
			return nil, entities.ErrDuplicateUser
		}
	}
	r.store.users[userEntity.Id] = cloneUser(userEntity)
	return cloneUser(userEntity), nil
}

func (r *UserRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if u, ok := r.store.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, nil
}

func (r *UserRepository) FindByIds(ctx context.Context, ids []primitive.ObjectID) ([]*entities.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	seen := make(map[primitive.ObjectID]bool, len(ids))
	users := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.store.users[id]; ok && !seen[id] {
			seen[id] = true
			users = append(users, cloneUser(u))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findFirst(func(u *entities.User) bool { return u.Username == username }), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findFirst(func(u *entities.User) bool { return u.Email == email }), nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*entities.User, error) {
	if token == "" {
		return nil, nil
	}
	return r.findFirst(func(u *entities.User) bool {
		return u.ResetPasswordToken == token && u.ResetPasswordExpires.After(now)
	}), nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, userID primitive.ObjectID, token string, expires time.Time) (*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userID]
	if !ok {
		return nil, nil
	}
	u.SetResetToken(token, expires)
	return cloneUser(u), nil
}

func (r *UserRepository) ResetPassword(ctx context.Context, userID primitive.ObjectID, token, passwordHash string, now time.Time) (*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userID]
	if !ok || u.ResetPasswordToken != token || !u.ResetPasswordExpires.After(now) {
		return nil, nil
	}
	u.Password = passwordHash
	u.ClearResetToken()
	return cloneUser(u), nil
}

func (r *UserRepository) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) (*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userID]
	if !ok {
		return nil, nil
	}
	if !u.HasFollower(followerID) {
		u.Followers = append(u.Followers, followerID)
	}
	return cloneUser(u), nil
}

func (r *UserRepository) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) (*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[userID]
	if !ok {
		return nil, nil
	}
	kept := make([]primitive.ObjectID, 0, len(u.Followers))
	for _, f := range u.Followers {
		if f != followerID {
			kept = append(kept, f)
		}
	}
	u.Followers = kept
	return cloneUser(u), nil
}

// AppendNotifications reports refs whose recipient does not exist as failures.
func (r *UserRepository) AppendNotifications(ctx context.Context, refs []repositories.NotificationRef) ([]repositories.AppendFailure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var failures []repositories.AppendFailure
	for _, ref := range refs {
		u, ok := r.store.users[ref.UserId]
		if !ok {
			failures = append(failures, repositories.AppendFailure{Ref: ref, Err: entities.ErrNotFound})
			continue
		}
		u.Notifications = append(u.Notifications, ref.NotificationId)
	}
	return failures, nil
}

func (r *UserRepository) findFirst(match func(*entities.User) bool) *entities.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if match(u) {
			return cloneUser(u)
		}
	}
	return nil
}
