package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
)

type NotificationRepository interface {
	// CreateMany inserts all notifications in one batch.
	CreateMany(ctx context.Context, notifications []*entities.Notification) ([]*entities.Notification, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*entities.Notification, error)
	// FindByIds returns notifications newest first.
	FindByIds(ctx context.Context, ids []primitive.ObjectID, unreadOnly bool) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*entities.Notification, error)
}
