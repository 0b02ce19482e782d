package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
)

type CampgroundFilter struct {
	// Search is matched case-insensitively and literally against the name.
	Search string
	Skip   int64
	Limit  int64
}

type CampgroundRepository interface {
	Create(ctx context.Context, campground *entities.Campground) (*entities.Campground, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*entities.Campground, error)
	Find(ctx context.Context, filter CampgroundFilter) ([]*entities.Campground, error)
	Count(ctx context.Context, filter CampgroundFilter) (int64, error)
	FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]*entities.Campground, error)
	Update(ctx context.Context, campground *entities.Campground) (*entities.Campground, error)
	// Delete returns the removed document, or nil if it did not exist.
	Delete(ctx context.Context, id primitive.ObjectID) (*entities.Campground, error)
	// ToggleLike atomically adds userID to the like list if absent or removes it if present.
	ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (*entities.Campground, error)
	AddComment(ctx context.Context, id, commentID primitive.ObjectID) error
	RemoveComment(ctx context.Context, id, commentID primitive.ObjectID) error
}
