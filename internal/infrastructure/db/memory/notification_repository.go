package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type NotificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) repositories.NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) CreateMany(ctx context.Context, notifications []*entities.Notification) ([]*entities.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, n := range notifications {
		r.store.notifications[n.Id] = cloneNotification(n)
	}
	return notifications, nil
}

func (r *NotificationRepository) FindById(ctx context.Context, id primitive.ObjectID) (*entities.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if n, ok := r.store.notifications[id]; ok {
		return cloneNotification(n), nil
	}
	return nil, nil
}

func (r *NotificationRepository) FindByIds(ctx context.Context, ids []primitive.ObjectID, unreadOnly bool) ([]*entities.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	seen := make(map[primitive.ObjectID]bool, len(ids))
	out := make([]*entities.Notification, 0, len(ids))
	for _, id := range ids {
		n, ok := r.store.notifications[id]
		if !ok || seen[id] || (unreadOnly && n.IsRead) {
			continue
		}
		seen[id] = true
		out = append(out, cloneNotification(n))
	}
	sort.Slice(out, func(i, j int) bool { return idLess(out[j].Id, out[i].Id) })
	return out, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*entities.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n, ok := r.store.notifications[id]
	if !ok {
		return nil, nil
	}
	n.MarkRead()
	return cloneNotification(n), nil
}
