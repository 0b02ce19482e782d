package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/interfaces"
	"yelpcamp/internal/application/mapper"
	"yelpcamp/internal/application/query"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
)

type CommentService struct {
	commentRepo    repositories.CommentRepository
	campgroundRepo repositories.CampgroundRepository
	logger         *zap.Logger
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	campgroundRepo repositories.CampgroundRepository,
	logger *zap.Logger,
) interfaces.CommentService {
	return &CommentService{
		commentRepo:    commentRepo,
		campgroundRepo: campgroundRepo,
		logger:         logger,
	}
}

func (s *CommentService) GetCampgroundForComment(ctx context.Context, campgroundID string) (*query.CampgroundQueryResult, error) {
	campground, err := s.loadCampground(ctx, campgroundID)
	if err != nil {
		return nil, err
	}
	return &query.CampgroundQueryResult{Result: mapper.NewCampgroundResultFromEntity(campground)}, nil
}

func (s *CommentService) CreateComment(ctx context.Context, createCommand *command.CreateCommentCommand) (*query.CommentQueryResult, error) {
	authorID, err := actorID(createCommand.Actor)
	if err != nil {
		return nil, err
	}
	campground, err := s.loadCampground(ctx, createCommand.CampgroundId)
	if err != nil {
		return nil, err
	}

	comment := entities.NewComment(
		createCommand.Text,
		entities.Author{Id: authorID, Username: createCommand.Actor.Username},
		campground.Id,
	)
	if err := comment.Validate(); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if err := s.campgroundRepo.AddComment(ctx, campground.Id, created.Id); err != nil {
		// Without the reference the comment would be unreachable.
		if delErr := s.commentRepo.Delete(ctx, created.Id); delErr != nil {
			s.logger.Error("remove orphaned comment", zap.String("comment_id", created.Id.Hex()), zap.Error(delErr))
		}
		return nil, fmt.Errorf("attach comment: %w", err)
	}
	campground.AddComment(created.Id)

	return &query.CommentQueryResult{
		Result:     mapper.NewCommentResultFromEntity(created),
		Campground: mapper.NewCampgroundResultFromEntity(campground),
	}, nil
}

func (s *CommentService) GetEditableComment(ctx context.Context, actor command.Actor, campgroundID, commentID string) (*query.CommentQueryResult, error) {
	campground, comment, err := s.loadOwned(ctx, actor, campgroundID, commentID)
	if err != nil {
		return nil, err
	}
	return &query.CommentQueryResult{
		Result:     mapper.NewCommentResultFromEntity(comment),
		Campground: mapper.NewCampgroundResultFromEntity(campground),
	}, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, updateCommand *command.UpdateCommentCommand) (*query.CommentQueryResult, error) {
	campground, comment, err := s.loadOwned(ctx, updateCommand.Actor, updateCommand.CampgroundId, updateCommand.CommentId)
	if err != nil {
		return nil, err
	}
	if err := comment.Edit(updateCommand.Text); err != nil {
		return nil, err
	}

	updated, err := s.commentRepo.Update(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if updated == nil {
		return nil, entities.ErrNotFound
	}
	return &query.CommentQueryResult{
		Result:     mapper.NewCommentResultFromEntity(updated),
		Campground: mapper.NewCampgroundResultFromEntity(campground),
	}, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, deleteCommand *command.DeleteCommentCommand) error {
	campground, comment, err := s.loadOwned(ctx, deleteCommand.Actor, deleteCommand.CampgroundId, deleteCommand.CommentId)
	if err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, comment.Id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if err := s.campgroundRepo.RemoveComment(ctx, campground.Id, comment.Id); err != nil && !errors.Is(err, entities.ErrNotFound) {
		s.logger.Warn("detach deleted comment",
			zap.String("campground_id", campground.Id.Hex()),
			zap.String("comment_id", comment.Id.Hex()),
			zap.Error(err))
	}
	return nil
}

func (s *CommentService) loadCampground(ctx context.Context, id string) (*entities.Campground, error) {
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

func (s *CommentService) loadOwned(ctx context.Context, actor command.Actor, campgroundID, commentID string) (*entities.Campground, *entities.Comment, error) {
	userID, err := actorID(actor)
	if err != nil {
		return nil, nil, err
	}
	campground, err := s.loadCampground(ctx, campgroundID)
	if err != nil {
		return nil, nil, err
	}
	oid, err := parseID(commentID)
	if err != nil {
		return nil, nil, err
	}
	comment, err := s.commentRepo.FindById(ctx, oid)
	if err != nil {
		return nil, nil, err
	}
	if comment == nil || comment.CampgroundId != campground.Id {
		return nil, nil, entities.ErrNotFound
	}
	if !comment.IsOwnedBy(userID, actor.IsAdmin) {
		return nil, nil, entities.ErrForbidden
	}
	return campground, comment, nil
}
