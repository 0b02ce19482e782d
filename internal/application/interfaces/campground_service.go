package interfaces

import (
	"context"

	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/query"
)

type CampgroundService interface {
	ListCampgrounds(ctx context.Context, indexQuery *query.CampgroundIndexQuery) (*query.CampgroundIndexResult, error)
	GetCampground(ctx context.Context, id string) (*query.CampgroundDetailResult, error)
	// GetEditableCampground returns the campground only when actor may change it.
	GetEditableCampground(ctx context.Context, actor command.Actor, id string) (*query.CampgroundQueryResult, error)
	CreateCampground(ctx context.Context, createCommand *command.CreateCampgroundCommand) (*command.CreateCampgroundCommandResult, error)
	UpdateCampground(ctx context.Context, updateCommand *command.UpdateCampgroundCommand) (*query.CampgroundQueryResult, error)
	DeleteCampground(ctx context.Context, deleteCommand *command.DeleteCampgroundCommand) error
	ToggleLike(ctx context.Context, likeCommand *command.ToggleLikeCommand) (*command.ToggleLikeCommandResult, error)
}

type CommentService interface {
	GetCampgroundForComment(ctx context.Context, campgroundID string) (*query.CampgroundQueryResult, error)
	GetEditableComment(ctx context.Context, actor command.Actor, campgroundID, commentID string) (*query.CommentQueryResult, error)
	CreateComment(ctx context.Context, createCommand *command.CreateCommentCommand) (*query.CommentQueryResult, error)
	UpdateComment(ctx context.Context, updateCommand *command.UpdateCommentCommand) (*query.CommentQueryResult, error)
	DeleteComment(ctx context.Context, deleteCommand *command.DeleteCommentCommand) error
}
