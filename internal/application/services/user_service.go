package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/application/interfaces"
	"yelpcamp/internal/application/mapper"
	"yelpcamp/internal/application/query"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
	"yelpcamp/internal/infrastructure"
)

type UserServiceOptions struct {
	// AdminCode, when set, grants isAdmin to registrations that present it.
	AdminCode     string
	ResetTokenTTL time.Duration
}

type UserService struct {
	userRepo       repositories.UserRepository
	campgroundRepo repositories.CampgroundRepository
	sessionRepo    repositories.SessionRepository
	jwtService     *infrastructure.JWTService
	mailer         interfaces.Mailer
	forgotLimiter  *infrastructure.RateLimiter
	logger         *zap.Logger
	options        UserServiceOptions
	now            func() time.Time
}

func NewUserService(
	userRepo repositories.UserRepository,
	campgroundRepo repositories.CampgroundRepository,
	sessionRepo repositories.SessionRepository,
	jwtService *infrastructure.JWTService,
	mailer interfaces.Mailer,
	forgotLimiter *infrastructure.RateLimiter,
	logger *zap.Logger,
	options UserServiceOptions,
) interfaces.UserService {
	if options.ResetTokenTTL <= 0 {
		options.ResetTokenTTL = time.Hour
	}
	return &UserService{
		userRepo:       userRepo,
		campgroundRepo: campgroundRepo,
		sessionRepo:    sessionRepo,
		jwtService:     jwtService,
		mailer:         mailer,
		forgotLimiter:  forgotLimiter,
		logger:         logger,
		options:        options,
		now:            time.Now,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	newUser := entities.NewUser(registerCommand.Username, registerCommand.Email, registerCommand.Password)
	if err := newUser.UpdateProfile(registerCommand.FirstName, registerCommand.LastName, registerCommand.Avatar); err != nil {
		return nil, err
	}
	newUser.IsAdmin = s.isAdminCode(registerCommand.AdminCode)

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	// Check if user already exists
	existingUser, err := s.userRepo.FindByUsername(ctx, newUser.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, entities.ErrDuplicateUser
	}
	existingUser, err = s.userRepo.FindByEmail(ctx, newUser.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, entities.ErrDuplicateUser
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.startSession(ctx, createdUser)
	if err != nil {
		return nil, err
	}
	return &command.RegisterUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) isAdminCode(code string) bool {
	if s.options.AdminCode == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(s.options.AdminCode)) == 1
}

func (s *UserService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(loginCommand.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrInvalidCredentials
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, entities.ErrInvalidCredentials
	}

	token, err := s.startSession(ctx, user)
	if err != nil {
		return nil, err
	}
	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) startSession(ctx context.Context, user *entities.User) (string, error) {
	token, err := s.jwtService.GenerateToken(user.Id.Hex())
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	if err := s.sessionRepo.SetToken(ctx, token, user.Id.Hex(), s.jwtService.TTL()); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *UserService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteToken(ctx, token)
}

func (s *UserService) Authenticate(ctx context.Context, token string) (*common.UserResult, error) {
	if token == "" {
		return nil, entities.ErrInvalidCredentials
	}
	subject, err := s.jwtService.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidCredentials, err)
	}

	stored, err := s.sessionRepo.GetToken(ctx, token)
	switch {
	case errors.Is(err, repositories.ErrSessionStoreDisabled):
		// Signature and expiry are all we can check.
	case err != nil:
		return nil, fmt.Errorf("look up session: %w", err)
	case stored != subject:
		return nil, entities.ErrInvalidCredentials
	}

	id, err := parseID(subject)
	if err != nil {
		return nil, entities.ErrInvalidCredentials
	}
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrInvalidCredentials
	}
	return mapper.NewUserResultFromEntity(user), nil
}

func (s *UserService) ForgotPassword(ctx context.Context, forgotCommand *command.ForgotPasswordCommand) (*command.ForgotPasswordCommandResult, error) {
	email := strings.ToLower(strings.TrimSpace(forgotCommand.Email))
	if s.forgotLimiter != nil && !s.forgotLimiter.Allow(email) {
		return nil, entities.ErrRateLimited
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrNotFound
	}

	token, err := infrastructure.GenerateResetToken()
	if err != nil {
		return nil, err
	}
	updated, err := s.userRepo.SetResetToken(ctx, user.Id, token, s.now().Add(s.options.ResetTokenTTL))
	if err != nil {
		return nil, fmt.Errorf("store reset token: %w", err)
	}
	if updated == nil {
		return nil, entities.ErrNotFound
	}

	body := "You are receiving this because you (or someone else) have requested the reset of the password for your account.\n\n" +
		"Please click on the following link, or paste this into your browser to complete the process:\n\n" +
		"http://" + forgotCommand.Host + "/reset/" + token + "\n\n" +
		"If you did not request this, please ignore this email and your password will remain unchanged.\n"
	if err := s.mailer.Send(ctx, user.Email, "YelpCamp Password Reset", body); err != nil {
		return nil, fmt.Errorf("send reset email: %w", err)
	}
	return &command.ForgotPasswordCommandResult{Email: user.Email}, nil
}

func (s *UserService) CheckResetToken(ctx context.Context, token string) error {
	_, err := s.userForResetToken(ctx, token)
	return err
}

// ResetPassword replaces the password of the user holding token and starts a session.
// The token stays usable until it expires or a reset succeeds.
func (s *UserService) ResetPassword(ctx context.Context, resetCommand *command.ResetPasswordCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userForResetToken(ctx, resetCommand.Token)
	if err != nil {
		return nil, err
	}
	if resetCommand.Password != resetCommand.Confirm {
		return nil, entities.ErrPasswordMismatch
	}

	if err := user.SetPassword(resetCommand.Password); err != nil {
		return nil, err
	}
	// Only the credential fields are written; followers and notifications may change meanwhile.
	user, err = s.userRepo.ResetPassword(ctx, user.Id, resetCommand.Token, user.Password, s.now())
	if err != nil {
		return nil, fmt.Errorf("reset password: %w", err)
	}
	if user == nil {
		return nil, entities.ErrInvalidResetToken
	}

	token, err := s.startSession(ctx, user)
	if err != nil {
		return nil, err
	}

	body := "Hello,\n\nThis is a confirmation that the password for your account " + user.Email + " has just been changed.\n"
	if err := s.mailer.Send(ctx, user.Email, "Your password has been changed", body); err != nil {
		s.logger.Warn("send password change confirmation", zap.String("user_id", user.Id.Hex()), zap.Error(err))
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) userForResetToken(ctx context.Context, token string) (*entities.User, error) {
	now := s.now()
	user, err := s.userRepo.FindByResetToken(ctx, token, now)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.ResetTokenValid(token, now) {
		return nil, entities.ErrInvalidResetToken
	}
	return user, nil
}

func (s *UserService) FindUserById(ctx context.Context, id string) (*query.UserQueryResult, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*query.UserProfileResult, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	followers, err := s.userRepo.FindByIds(ctx, user.Followers)
	if err != nil {
		return nil, fmt.Errorf("load followers: %w", err)
	}
	campgrounds, err := s.campgroundRepo.FindByAuthor(ctx, user.Id)
	if err != nil {
		return nil, fmt.Errorf("load campgrounds: %w", err)
	}
	return &query.UserProfileResult{
		User:        mapper.NewUserResultFromEntity(user),
		Followers:   mapper.NewUserResultsFromEntities(followers),
		Campgrounds: mapper.NewCampgroundResultsFromEntities(campgrounds),
	}, nil
}

func (s *UserService) FollowUser(ctx context.Context, followCommand *command.FollowUserCommand) (*query.UserQueryResult, error) {
	return s.follow(ctx, followCommand, s.userRepo.AddFollower)
}

func (s *UserService) UnfollowUser(ctx context.Context, followCommand *command.FollowUserCommand) (*query.UserQueryResult, error) {
	return s.follow(ctx, followCommand, s.userRepo.RemoveFollower)
}

type followerUpdate func(ctx context.Context, userID, followerID primitive.ObjectID) (*entities.User, error)

func (s *UserService) follow(ctx context.Context, followCommand *command.FollowUserCommand, apply followerUpdate) (*query.UserQueryResult, error) {
	followerID, err := actorID(followCommand.Actor)
	if err != nil {
		return nil, err
	}
	targetID, err := parseID(followCommand.UserId)
	if err != nil {
		return nil, err
	}
	if targetID == followerID {
		return nil, entities.ErrSelfFollow
	}

	user, err := apply(ctx, targetID, followerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrNotFound
	}
	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *UserService) load(ctx context.Context, id string) (*entities.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindById(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entities.ErrNotFound
	}
	return user, nil
}
