package interfaces

import (
	"context"

	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/application/query"
)

type UserService interface {
	RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*common.UserResult, error)
	ForgotPassword(ctx context.Context, forgotCommand *command.ForgotPasswordCommand) (*command.ForgotPasswordCommandResult, error)
	CheckResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, resetCommand *command.ResetPasswordCommand) (*command.LoginUserCommandResult, error)
	FindUserById(ctx context.Context, id string) (*query.UserQueryResult, error)
	GetProfile(ctx context.Context, id string) (*query.UserProfileResult, error)
	FollowUser(ctx context.Context, followCommand *command.FollowUserCommand) (*query.UserQueryResult, error)
	UnfollowUser(ctx context.Context, followCommand *command.FollowUserCommand) (*query.UserQueryResult, error)
}
