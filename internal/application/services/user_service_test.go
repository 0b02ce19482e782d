package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap/zaptest"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
	"yelpcamp/internal/infrastructure"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	res, err := f.userSvc.RegisterUser(ctx, &command.RegisterUserCommand{
		Username:  "alice",
		Password:  "password",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "Alice@Example.com",
		AdminCode: "letmein",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.User.IsAdmin)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, "Alice Liddell", res.User.FullName())

	bob, err := f.userSvc.RegisterUser(ctx, &command.RegisterUserCommand{
		Username: "bob", Password: "password", Email: "bob@example.com", AdminCode: "guess",
	})
	require.NoError(t, err)
	assert.False(t, bob.User.IsAdmin)

	_, err = f.userSvc.RegisterUser(ctx, &command.RegisterUserCommand{
		Username: "alice", Password: "password", Email: "other@example.com",
	})
	assert.ErrorIs(t, err, entities.ErrDuplicateUser)

	_, err = f.userSvc.RegisterUser(ctx, &command.RegisterUserCommand{
		Username: "alice2", Password: "password", Email: "ALICE@example.com",
	})
	assert.ErrorIs(t, err, entities.ErrDuplicateUser)

	_, err = f.userSvc.RegisterUser(ctx, &command.RegisterUserCommand{Username: "carol", Email: "carol@example.com"})
	assert.Error(t, err)
}

func TestLoginAndLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice")

	_, err := f.userSvc.LoginUser(ctx, &command.LoginUserCommand{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	_, err = f.userSvc.LoginUser(ctx, &command.LoginUserCommand{Username: "nobody", Password: "password"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)

	login, err := f.userSvc.LoginUser(ctx, &command.LoginUserCommand{Username: "alice", Password: "password"})
	require.NoError(t, err)

	user, err := f.userSvc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	require.NoError(t, f.userSvc.Logout(ctx, login.Token))
	_, err = f.userSvc.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)

	_, err = f.userSvc.Authenticate(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestAuthenticateWithoutSessionStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice")

	// A Redis service without a client falls back to signature checks only.
	f.userSvc.sessionRepo = infrastructure.NewRedisServiceFromClient(nil)

	login, err := f.userSvc.LoginUser(ctx, &command.LoginUserCommand{Username: "alice", Password: "password"})
	require.NoError(t, err)
	require.NoError(t, f.userSvc.Logout(ctx, login.Token))

	user, err := f.userSvc.Authenticate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func resetTokenFor(t *testing.T, f *fixture, email string) string {
	t.Helper()
	u, err := f.users.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u.ResetPasswordToken
}

func TestResetTokenValidUntilExpiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice")

	now := time.Now()
	f.userSvc.now = func() time.Time { return now }

	res, err := f.userSvc.ForgotPassword(ctx, &command.ForgotPasswordCommand{Email: "alice@example.com", Host: "localhost:3000"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", res.Email)

	token := resetTokenFor(t, f, "alice@example.com")
	assert.Len(t, token, 40)
	require.Len(t, f.mailer.sent, 1)
	assert.Contains(t, f.mailer.sent[0].body, "http://localhost:3000/reset/"+token)

	require.NoError(t, f.userSvc.CheckResetToken(ctx, token))

	// A mismatch does not consume the token.
	_, err = f.userSvc.ResetPassword(ctx, &command.ResetPasswordCommand{Token: token, Password: "new-pass", Confirm: "other"})
	assert.ErrorIs(t, err, entities.ErrPasswordMismatch)

	now = now.Add(59 * time.Minute)
	require.NoError(t, f.userSvc.CheckResetToken(ctx, token))

	saved := now
	now = now.Add(time.Minute)
	assert.ErrorIs(t, f.userSvc.CheckResetToken(ctx, token), entities.ErrInvalidResetToken)
	_, err = f.userSvc.ResetPassword(ctx, &command.ResetPasswordCommand{Token: token, Password: "new-pass", Confirm: "new-pass"})
	assert.ErrorIs(t, err, entities.ErrInvalidResetToken)

	now = saved
	login, err := f.userSvc.ResetPassword(ctx, &command.ResetPasswordCommand{Token: token, Password: "new-pass", Confirm: "new-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	require.Len(t, f.mailer.sent, 2)
	assert.Contains(t, f.mailer.sent[1].body, "has just been changed")

	assert.Empty(t, resetTokenFor(t, f, "alice@example.com"))
	assert.ErrorIs(t, f.userSvc.CheckResetToken(ctx, token), entities.ErrInvalidResetToken)

	_, err = f.userSvc.LoginUser(ctx, &command.LoginUserCommand{Username: "alice", Password: "password"})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	_, err = f.userSvc.LoginUser(ctx, &command.LoginUserCommand{Username: "alice", Password: "new-pass"})
	require.NoError(t, err)
}

func TestForgotPasswordErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice")

	_, err := f.userSvc.ForgotPassword(ctx, &command.ForgotPasswordCommand{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, entities.ErrNotFound)

	f.mailer.err = errors.New("smtp down")
	_, err = f.userSvc.ForgotPassword(ctx, &command.ForgotPasswordCommand{Email: "alice@example.com"})
	assert.ErrorContains(t, err, "smtp down")
	f.mailer.err = nil

	limiter := infrastructure.NewWindowLimiter(time.Hour, 1)
	t.Cleanup(limiter.Stop)
	f.userSvc.forgotLimiter = limiter
	_, err = f.userSvc.ForgotPassword(ctx, &command.ForgotPasswordCommand{Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = f.userSvc.ForgotPassword(ctx, &command.ForgotPasswordCommand{Email: " ALICE@example.com"})
	assert.ErrorIs(t, err, entities.ErrRateLimited)
}

func TestFollowTwiceLeavesOneEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	f.follow(t, bob, alice)
	res, err := f.userSvc.FollowUser(ctx, &command.FollowUserCommand{Actor: bob, UserId: alice.Id})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Result.FollowerCount)
	assert.True(t, res.Result.FollowedBy(bob.Id))

	_, err = f.userSvc.FollowUser(ctx, &command.FollowUserCommand{Actor: alice, UserId: alice.Id})
	assert.ErrorIs(t, err, entities.ErrSelfFollow)

	profile, err := f.userSvc.GetProfile(ctx, alice.Id)
	require.NoError(t, err)
	require.Len(t, profile.Followers, 1)
	assert.Equal(t, "bob", profile.Followers[0].Username)

	res, err = f.userSvc.UnfollowUser(ctx, &command.FollowUserCommand{Actor: bob, UserId: alice.Id})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Result.FollowerCount)
}

func TestGetProfileListsCampgrounds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	f.createCampground(t, alice, "Salmon Creek")
	f.createCampground(t, alice, "Granite Hill")

	profile, err := f.userSvc.GetProfile(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	require.Len(t, profile.Campgrounds, 2)
	names := []string{profile.Campgrounds[0].Name, profile.Campgrounds[1].Name}
	assert.ElementsMatch(t, []string{"Salmon Creek", "Granite Hill"}, names)

	_, err = f.userSvc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestNewUserServiceDefaultsResetTTL(t *testing.T) {
	svc := NewUserService(nil, nil, nil, nil, nil, nil, zaptest.NewLogger(t), UserServiceOptions{}).(*UserService)
	assert.Equal(t, time.Hour, svc.options.ResetTokenTTL)
	assert.False(t, svc.isAdminCode(""))
}

// interleavingUsers runs onLookup once, right after the user service has read the
// account it is about to change.
type interleavingUsers struct {
	repositories.UserRepository
	onLookup func()
}

func (r *interleavingUsers) fire() {
	if r.onLookup != nil {
		fn := r.onLookup
		r.onLookup = nil
		fn()
	}
}

func (r *interleavingUsers) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, err := r.UserRepository.FindByEmail(ctx, email)
	r.fire()
	return u, err
}

func (r *interleavingUsers) FindByResetToken(ctx context.Context, token string, now time.Time) (*entities.User, error) {
	u, err := r.UserRepository.FindByResetToken(ctx, token, now)
	r.fire()
	return u, err
}

func TestPasswordResetKeepsConcurrentFollowsAndNotifications(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	carol := f.register(t, "carol")
	aliceID, _ := primitive.ObjectIDFromHex(alice.Id)
	bobID, _ := primitive.ObjectIDFromHex(bob.Id)
	carolID, _ := primitive.ObjectIDFromHex(carol.Id)

	users := &interleavingUsers{UserRepository: f.users}
	f.userSvc.userRepo = users

	first := primitive.NewObjectID()
	users.onLookup = func() {
		_, err := f.users.AddFollower(ctx, aliceID, bobID)
		require.NoError(t, err)
		failures, err := f.users.AppendNotifications(ctx, []repositories.NotificationRef{{UserId: aliceID, NotificationId: first}})
		require.NoError(t, err)
		require.Empty(t, failures)
	}
	_, err := f.userSvc.ForgotPassword(ctx, &command.ForgotPasswordCommand{Email: "alice@example.com", Host: "localhost"})
	require.NoError(t, err)
	token := resetTokenFor(t, f, "alice@example.com")
	require.NotEmpty(t, token)

	second := primitive.NewObjectID()
	users.onLookup = func() {
		_, err := f.users.AddFollower(ctx, aliceID, carolID)
		require.NoError(t, err)
		_, err = f.users.AppendNotifications(ctx, []repositories.NotificationRef{{UserId: aliceID, NotificationId: second}})
		require.NoError(t, err)
	}
	_, err = f.userSvc.ResetPassword(ctx, &command.ResetPasswordCommand{Token: token, Password: "new-pass", Confirm: "new-pass"})
	require.NoError(t, err)

	reloaded, err := f.users.FindById(ctx, aliceID)
	require.NoError(t, err)
	assert.True(t, reloaded.HasFollower(bobID))
	assert.True(t, reloaded.HasFollower(carolID))
	assert.Equal(t, []primitive.ObjectID{first, second}, reloaded.Notifications)
	assert.Empty(t, reloaded.ResetPasswordToken)
	assert.NoError(t, reloaded.CheckPassword("new-pass"))
}

func TestResetPasswordLosesRaceToEarlierReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "alice")
	_, err := f.userSvc.ForgotPassword(ctx, &command.ForgotPasswordCommand{Email: "alice@example.com", Host: "localhost"})
	require.NoError(t, err)
	token := resetTokenFor(t, f, "alice@example.com")

	users := &interleavingUsers{UserRepository: f.users}
	f.userSvc.userRepo = users
	users.onLookup = func() {
		u, err := f.users.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		_, err = f.users.ResetPassword(ctx, u.Id, token, "winner-hash", time.Now())
		require.NoError(t, err)
	}
	_, err = f.userSvc.ResetPassword(ctx, &command.ResetPasswordCommand{Token: token, Password: "late", Confirm: "late"})
	assert.ErrorIs(t, err, entities.ErrInvalidResetToken)
}
