package main

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"yelpcamp/internal/config"
	"yelpcamp/internal/domain/repositories"
	"yelpcamp/internal/infrastructure/db/memory"
	"yelpcamp/internal/infrastructure/db/mongodb"
)

// store bundles the repositories of one backing database.
type store struct {
	users         repositories.UserRepository
	campgrounds   repositories.CampgroundRepository
	comments      repositories.CommentRepository
	notifications repositories.NotificationRepository
	// sessions is set only for backends that can hold sessions themselves.
	sessions repositories.SessionRepository
	health   func(ctx context.Context) error
	close    func(ctx context.Context) error
}

func openStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (*store, error) {
	switch cfg.Driver {
	case "memory":
		logger.Warn("using in-memory store, data is lost on exit")
		s := memory.NewStore()
		return &store{
			users:         memory.NewUserRepository(s),
			campgrounds:   memory.NewCampgroundRepository(s),
			comments:      memory.NewCommentRepository(s),
			notifications: memory.NewNotificationRepository(s),
			sessions:      memory.NewSessionRepository(s),
			close:         func(context.Context) error { return nil },
		}, nil
	case "mongo":
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		logger.Info("connected to MongoDB", zap.String("database", cfg.Database))
		return &store{
			users:         mongodb.NewUserRepository(db),
			campgrounds:   mongodb.NewCampgroundRepository(db),
			comments:      mongodb.NewCommentRepository(db),
			notifications: mongodb.NewNotificationRepository(db),
			health: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: client.Disconnect,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
