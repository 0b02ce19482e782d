package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/application/interfaces"
	"yelpcamp/internal/application/mapper"
	"yelpcamp/internal/application/query"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type NotificationService struct {
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	logger           *zap.Logger
}

func NewNotificationService(
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	logger *zap.Logger,
) interfaces.NotificationService {
	return &NotificationService{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// NotifyFollowers inserts one notification per follower in a single batch and then appends
// each reference to its recipient independently. A recipient that cannot be updated is
// reported in the result and does not stop the others. Nothing is retried or rolled back.
func (s *NotificationService) NotifyFollowers(ctx context.Context, author *entities.User, campground *entities.Campground) (*common.FanoutReport, error) {
	followers := author.Followers
	report := &common.FanoutReport{Followers: len(followers)}
	if len(followers) == 0 {
		return report, nil
	}

	notifications := make([]*entities.Notification, 0, len(followers))
	for range followers {
		notifications = append(notifications, entities.NewNotification(author.Username, campground.Id))
	}
	if _, err := s.notificationRepo.CreateMany(ctx, notifications); err != nil {
		report.Failures = failAll(followers, err)
		return report, fmt.Errorf("create notifications: %w", err)
	}

	refs := make([]repositories.NotificationRef, 0, len(followers))
	for i, followerID := range followers {
		refs = append(refs, repositories.NotificationRef{
			UserId:         followerID,
			NotificationId: notifications[i].Id,
		})
	}

	failures, err := s.userRepo.AppendNotifications(ctx, refs)
	if err != nil {
		report.Failures = failAll(followers, err)
		return report, fmt.Errorf("append notifications: %w", err)
	}
	for _, f := range failures {
		report.Failures = append(report.Failures, common.FanoutFailure{
			FollowerId: f.Ref.UserId.Hex(),
			Reason:     f.Err.Error(),
		})
		s.logger.Warn("notification not delivered",
			zap.String("follower_id", f.Ref.UserId.Hex()),
			zap.String("notification_id", f.Ref.NotificationId.Hex()),
			zap.Error(f.Err))
	}
	report.Delivered = report.Followers - len(report.Failures)
	return report, nil
}

func failAll(followers []primitive.ObjectID, err error) []common.FanoutFailure {
	failures := make([]common.FanoutFailure, 0, len(followers))
	for _, f := range followers {
		failures = append(failures, common.FanoutFailure{FollowerId: f.Hex(), Reason: err.Error()})
	}
	return failures
}

func (s *NotificationService) ListNotifications(ctx context.Context, actor command.Actor) (*query.NotificationListResult, error) {
	return s.list(ctx, actor, false)
}

func (s *NotificationService) ListUnread(ctx context.Context, actor command.Actor) (*query.NotificationListResult, error) {
	return s.list(ctx, actor, true)
}

func (s *NotificationService) list(ctx context.Context, actor command.Actor, unreadOnly bool) (*query.NotificationListResult, error) {
	user, err := s.loadActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notificationRepo.FindByIds(ctx, user.Notifications, unreadOnly)
	if err != nil {
		return nil, err
	}
	return &query.NotificationListResult{
		Result: mapper.NewNotificationResultsFromEntities(notifications),
	}, nil
}

func (s *NotificationService) OpenNotification(ctx context.Context, actor command.Actor, id string) (*common.NotificationResult, error) {
	user, err := s.loadActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	notificationID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	// Only the recipient may open a notification.
	if !user.HasNotification(notificationID) {
		return nil, entities.ErrNotFound
	}

	notification, err := s.notificationRepo.MarkRead(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, entities.ErrNotFound
	}
	return mapper.NewNotificationResultFromEntity(notification), nil
}

func (s *NotificationService) loadActor(ctx context.Context, actor command.Actor) (*entities.User, error) {
	id, err := actorID(actor)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrNotFound
	}
	return user, nil
}
