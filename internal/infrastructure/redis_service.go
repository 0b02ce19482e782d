package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"yelpcamp/internal/config"
	"yelpcamp/internal/domain/repositories"
)

const sessionKeyPrefix = "session:"

// RedisService stores session tokens. With a nil client every write is a no-op and
// lookups report repositories.ErrSessionStoreDisabled.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *RedisService {
	// Alternative: Use REDIS_URL if provided
	if cfg.URL != "" {
		opt, err := redis.ParseURL(cfg.URL)
		if err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis connection failed with REDIS_URL", zap.Error(err))
				_ = client.Close()
			} else {
				logger.Info("connected to redis", zap.String("addr", opt.Addr))
				return &RedisService{client: client}
			}
		} else {
			logger.Warn("invalid REDIS_URL", zap.Error(err))
		}
	}

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, sessions fall back to token signatures only",
			zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return &RedisService{client: nil}
	}

	logger.Info("connected to redis", zap.String("addr", addr))
	return NewRedisServiceFromClient(client)
}

func NewRedisServiceFromClient(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

var _ repositories.SessionRepository = (*RedisService)(nil)

func (r *RedisService) Enabled() bool {
	return r.client != nil
}

func (r *RedisService) SetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err()
}

func (r *RedisService) GetToken(ctx context.Context, token string) (string, error) {
	if r.client == nil {
		return "", repositories.ErrSessionStoreDisabled
	}
	userID, err := r.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (r *RedisService) DeleteToken(ctx context.Context, token string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Del(ctx, sessionKeyPrefix+token).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Close()
}
