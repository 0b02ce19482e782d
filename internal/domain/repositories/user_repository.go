package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"yelpcamp/internal/domain/entities"
)

// NotificationRef pairs a recipient with a notification to append to their list.
type NotificationRef struct {
	UserId         primitive.ObjectID
	NotificationId primitive.ObjectID
}

// AppendFailure reports one NotificationRef that could not be persisted.
type AppendFailure struct {
	Ref NotificationRef
	Err error
}

// UserRepository lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*entities.User, error)
	FindByIds(ctx context.Context, ids []primitive.ObjectID) ([]*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByResetToken(ctx context.Context, token string, now time.Time) (*entities.User, error)
	// SetResetToken writes only the reset token fields.
	SetResetToken(ctx context.Context, userID primitive.ObjectID, token string, expires time.Time) (*entities.User, error)
	// ResetPassword stores passwordHash and clears the reset token, provided token is still
	// held by the user and unexpired at now.
	ResetPassword(ctx context.Context, userID primitive.ObjectID, token, passwordHash string, now time.Time) (*entities.User, error)
	// AddFollower has add-to-set semantics.
	AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) (*entities.User, error)
	RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) (*entities.User, error)
	// AppendNotifications pushes every ref independently. A non-nil error means the batch
	// could not be attempted at all; otherwise failures lists the refs that were not applied.
	AppendNotifications(ctx context.Context, refs []NotificationRef) (failures []AppendFailure, err error)
}
