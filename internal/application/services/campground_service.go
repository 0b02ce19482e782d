package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/application/interfaces"
	"yelpcamp/internal/application/mapper"
	"yelpcamp/internal/application/query"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type CampgroundService struct {
	campgroundRepo      repositories.CampgroundRepository
	commentRepo         repositories.CommentRepository
	userRepo            repositories.UserRepository
	notificationService interfaces.NotificationService
	geocoder            interfaces.Geocoder
	publisher           interfaces.EventPublisher
	logger              *zap.Logger
}

func NewCampgroundService(
	campgroundRepo repositories.CampgroundRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
	notificationService interfaces.NotificationService,
	geocoder interfaces.Geocoder,
	publisher interfaces.EventPublisher,
	logger *zap.Logger,
) interfaces.CampgroundService {
	return &CampgroundService{
		campgroundRepo:      campgroundRepo,
		commentRepo:         commentRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		geocoder:            geocoder,
		publisher:           publisher,
		logger:              logger,
	}
}

func (s *CampgroundService) ListCampgrounds(ctx context.Context, indexQuery *query.CampgroundIndexQuery) (*query.CampgroundIndexResult, error) {
	page := indexQuery.Page
	if page < 1 {
		page = 1
	}
	search := strings.TrimSpace(indexQuery.Search)

	filter := repositories.CampgroundFilter{Search: search}
	count, err := s.campgroundRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count campgrounds: %w", err)
	}

	filter.Skip = int64(page-1) * query.CampgroundsPerPage
	filter.Limit = query.CampgroundsPerPage
	campgrounds, err := s.campgroundRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find campgrounds: %w", err)
	}

	result := &query.CampgroundIndexResult{
		Campgrounds: mapper.NewCampgroundResultsFromEntities(campgrounds),
		Current:     page,
		Pages:       int((count + query.CampgroundsPerPage - 1) / query.CampgroundsPerPage),
		Search:      search,
	}
	if search != "" && len(campgrounds) == 0 {
		result.NoMatch = query.NoMatchMessage
	}
	return result, nil
}

func (s *CampgroundService) GetCampground(ctx context.Context, id string) (*query.CampgroundDetailResult, error) {
	campground, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByIds(ctx, campground.Comments)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	likers, err := s.userRepo.FindByIds(ctx, campground.Likes)
	if err != nil {
		return nil, fmt.Errorf("load likers: %w", err)
	}
	names := make([]string, 0, len(likers))
	for _, u := range likers {
		names = append(names, u.Username)
	}

	return &query.CampgroundDetailResult{
		Campground: mapper.NewCampgroundResultFromEntity(campground),
		Comments:   mapper.NewCommentResultsFromEntities(comments),
		Likers:     names,
	}, nil
}

func (s *CampgroundService) GetEditableCampground(ctx context.Context, actor command.Actor, id string) (*query.CampgroundQueryResult, error) {
	campground, err := s.loadOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return &query.CampgroundQueryResult{Result: mapper.NewCampgroundResultFromEntity(campground)}, nil
}

func (s *CampgroundService) CreateCampground(ctx context.Context, createCommand *command.CreateCampgroundCommand) (*command.CreateCampgroundCommandResult, error) {
	authorID, err := actorID(createCommand.Actor)
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.FindById(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, entities.ErrNotFound
	}

	location, err := s.geocode(ctx, createCommand.Location)
	if err != nil {
		return nil, err
	}

	campground := entities.NewCampground(
		createCommand.Name,
		createCommand.Cost,
		createCommand.Image,
		createCommand.Description,
		entities.Author{Id: author.Id, Username: author.Username},
	)
	campground.SetLocation(*location)
	if err := campground.Validate(); err != nil {
		return nil, err
	}

	created, err := s.campgroundRepo.Create(ctx, campground)
	if err != nil {
		return nil, fmt.Errorf("create campground: %w", err)
	}

	// The campground stands even if some followers are not notified.
	report, err := s.notificationService.NotifyFollowers(ctx, author, created)
	if err != nil {
		s.logger.Warn("follower fan-out failed",
			zap.String("campground_id", created.Id.Hex()),
			zap.Int("followers", report.Followers),
			zap.Error(err))
	} else if !report.Complete() {
		s.logger.Warn("follower fan-out incomplete",
			zap.String("campground_id", created.Id.Hex()),
			zap.Int("followers", report.Followers),
			zap.Int("delivered", report.Delivered))
	}

	s.publishCreated(ctx, author, created, report)

	return &command.CreateCampgroundCommandResult{
		Result: mapper.NewCampgroundResultFromEntity(created),
		Fanout: report,
	}, nil
}

func (s *CampgroundService) publishCreated(ctx context.Context, author *entities.User, campground *entities.Campground, report *common.FanoutReport) {
	if s.publisher == nil {
		return
	}
	event := &common.CampgroundCreatedEvent{
		CampgroundId:   campground.Id.Hex(),
		Name:           campground.Name,
		AuthorId:       author.Id.Hex(),
		AuthorUsername: author.Username,
		Followers:      report.Followers,
		Delivered:      report.Delivered,
		CreatedAt:      campground.CreatedAt,
	}
	if err := s.publisher.PublishCampgroundCreated(ctx, event); err != nil {
		s.logger.Error("publish campground.created", zap.String("campground_id", event.CampgroundId), zap.Error(err))
	}
}

func (s *CampgroundService) UpdateCampground(ctx context.Context, updateCommand *command.UpdateCampgroundCommand) (*query.CampgroundQueryResult, error) {
	campground, err := s.loadOwned(ctx, updateCommand.Actor, updateCommand.CampgroundId)
	if err != nil {
		return nil, err
	}

	location, err := s.geocode(ctx, updateCommand.Location)
	if err != nil {
		return nil, err
	}
	if err := campground.Update(updateCommand.Name, updateCommand.Cost, updateCommand.Image, updateCommand.Description); err != nil {
		return nil, err
	}
	campground.SetLocation(*location)

	updated, err := s.campgroundRepo.Update(ctx, campground)
	if err != nil {
		return nil, fmt.Errorf("update campground: %w", err)
	}
	if updated == nil {
		return nil, entities.ErrNotFound
	}
	return &query.CampgroundQueryResult{Result: mapper.NewCampgroundResultFromEntity(updated)}, nil
}

func (s *CampgroundService) DeleteCampground(ctx context.Context, deleteCommand *command.DeleteCampgroundCommand) error {
	campground, err := s.loadOwned(ctx, deleteCommand.Actor, deleteCommand.CampgroundId)
	if err != nil {
		return err
	}

	removed, err := s.campgroundRepo.Delete(ctx, campground.Id)
	if err != nil {
		return fmt.Errorf("delete campground: %w", err)
	}
	if removed == nil {
		return entities.ErrNotFound
	}

	deleted, err := s.commentRepo.DeleteMany(ctx, removed.Comments)
	if err != nil {
		s.logger.Error("delete campground comments",
			zap.String("campground_id", removed.Id.Hex()),
			zap.Int("comments", len(removed.Comments)),
			zap.Error(err))
		return nil
	}
	s.logger.Debug("campground deleted",
		zap.String("campground_id", removed.Id.Hex()),
		zap.Int64("comments_deleted", deleted))
	return nil
}

func (s *CampgroundService) ToggleLike(ctx context.Context, likeCommand *command.ToggleLikeCommand) (*command.ToggleLikeCommandResult, error) {
	userID, err := actorID(likeCommand.Actor)
	if err != nil {
		return nil, err
	}
	id, err := parseID(likeCommand.CampgroundId)
	if err != nil {
		return nil, err
	}

	updated, err := s.campgroundRepo.ToggleLike(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	if updated == nil {
		return nil, entities.ErrNotFound
	}
	return &command.ToggleLikeCommandResult{
		Result: mapper.NewCampgroundResultFromEntity(updated),
		Liked:  updated.LikedBy(userID),
	}, nil
}

func (s *CampgroundService) geocode(ctx context.Context, address string) (*entities.Location, error) {
	if strings.TrimSpace(address) == "" {
		return nil, entities.ErrInvalidAddress
	}
	location, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidAddress) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidAddress, err)
	}
	return location, nil
}

func (s *CampgroundService) load(ctx context.Context, id string) (*entities.Campground, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	campground, err := s.campgroundRepo.FindById(ctx, oid)
	if err != nil {
		return nil, err
	}
	if campground == nil {
		return nil, entities.ErrNotFound
	}
	return campground, nil
}

func (s *CampgroundService) loadOwned(ctx context.Context, actor command.Actor, id string) (*entities.Campground, error) {
	userID, err := actorID(actor)
	if err != nil {
		return nil, err
	}
	campground, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !campground.IsOwnedBy(userID, actor.IsAdmin) {
		return nil, entities.ErrForbidden
	}
	return campground, nil
}
