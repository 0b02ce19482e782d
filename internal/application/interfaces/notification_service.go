package interfaces

import (
	"context"

	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/application/query"
	"yelpcamp/internal/domain/entities"
)

type NotificationService interface {
	// NotifyFollowers fans a new campground out to every follower of its author.
	NotifyFollowers(ctx context.Context, author *entities.User, campground *entities.Campground) (*common.FanoutReport, error)
	ListNotifications(ctx context.Context, actor command.Actor) (*query.NotificationListResult, error)
	ListUnread(ctx context.Context, actor command.Actor) (*query.NotificationListResult, error)
	// OpenNotification marks a notification read and returns it.
	OpenNotification(ctx context.Context, actor command.Actor, id string) (*common.NotificationResult, error)
}
