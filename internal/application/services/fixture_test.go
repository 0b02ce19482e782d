package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"yelpcamp/internal/application/command"
	"yelpcamp/internal/application/common"
	"yelpcamp/internal/application/interfaces"
	"yelpcamp/internal/domain/entities"
	"yelpcamp/internal/domain/repositories"
	"yelpcamp/internal/infrastructure"
	"yelpcamp/internal/infrastructure/db/memory"
)

type fakeGeocoder struct {
	err error
}

func (g *fakeGeocoder) Geocode(ctx context.Context, address string) (*entities.Location, error) {
	if g.err != nil {
		return nil, g.err
	}
	if address == "nowhere" {
		return nil, entities.ErrInvalidAddress
	}
	return &entities.Location{Address: address + ", USA", Lat: 44.5, Lng: -110.5}, nil
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakePublisher struct {
	events []*common.CampgroundCreatedEvent
}

func (p *fakePublisher) PublishCampgroundCreated(ctx context.Context, event *common.CampgroundCreatedEvent) error {
	p.events = append(p.events, event)
	return nil
}

type fixture struct {
	users         repositories.UserRepository
	campgrounds   repositories.CampgroundRepository
	comments      repositories.CommentRepository
	sessions      repositories.SessionRepository
	geocoder      *fakeGeocoder
	mailer        *fakeMailer
	publisher     *fakePublisher
	userSvc       *UserService
	campgroundSvc interfaces.CampgroundService
	commentSvc    interfaces.CommentService
	notifySvc     interfaces.NotificationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)
	store := memory.NewStore()

	f := &fixture{
		users:       memory.NewUserRepository(store),
		campgrounds: memory.NewCampgroundRepository(store),
		comments:    memory.NewCommentRepository(store),
		sessions:    memory.NewSessionRepository(store),
		geocoder:    &fakeGeocoder{},
		mailer:      &fakeMailer{},
		publisher:   &fakePublisher{},
	}

	limiter := infrastructure.NewWindowLimiter(time.Hour, 100)
	t.Cleanup(limiter.Stop)

	f.notifySvc = NewNotificationService(f.users, memory.NewNotificationRepository(store), logger)
	f.userSvc = NewUserService(
		f.users,
		f.campgrounds,
		f.sessions,
		infrastructure.NewJWTService("test-secret", time.Hour),
		f.mailer,
		limiter,
		logger,
		UserServiceOptions{AdminCode: "letmein", ResetTokenTTL: time.Hour},
	).(*UserService)
	f.campgroundSvc = NewCampgroundService(f.campgrounds, f.comments, f.users, f.notifySvc, f.geocoder, f.publisher, logger)
	f.commentSvc = NewCommentService(f.comments, f.campgrounds, logger)
	return f
}

func (f *fixture) register(t *testing.T, username string) command.Actor {
	t.Helper()
	res, err := f.userSvc.RegisterUser(context.Background(), &command.RegisterUserCommand{
		Username: username,
		Email:    username + "@example.com",
		Password: "password",
	})
	require.NoError(t, err)
	return command.Actor{Id: res.User.Id, Username: res.User.Username, IsAdmin: res.User.IsAdmin}
}

func (f *fixture) follow(t *testing.T, follower command.Actor, target command.Actor) {
	t.Helper()
	_, err := f.userSvc.FollowUser(context.Background(), &command.FollowUserCommand{Actor: follower, UserId: target.Id})
	require.NoError(t, err)
}

func (f *fixture) createCampground(t *testing.T, author command.Actor, name string) *command.CreateCampgroundCommandResult {
	t.Helper()
	res, err := f.campgroundSvc.CreateCampground(context.Background(), &command.CreateCampgroundCommand{
		Actor:       author,
		Name:        name,
		Cost:        9.5,
		Image:       "https://example.com/camp.jpg",
		Description: "quiet spot",
		Location:    "Yellowstone",
	})
	require.NoError(t, err)
	return res
}

func actorFor(id string) command.Actor {
	return command.Actor{Id: id}
}
