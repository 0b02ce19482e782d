package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) (*entities.Comment, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*entities.Comment, error)
	// FindByIds returns comments oldest first.
	FindByIds(ctx context.Context, ids []primitive.ObjectID) ([]*entities.Comment, error)
	Update(ctx context.Context, comment *entities.Comment) (*entities.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
