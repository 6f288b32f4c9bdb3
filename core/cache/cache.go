package cache

import (
	"context"
	"fmt"
	"time"

	"planit-api/core/config"
	"planit-api/core/constants"
	"planit-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis client used for token blacklisting and
// login throttling.
type Cache struct {
	client *redis.Client
}

var instance *Cache

func GetCache() *Cache {
	return instance
}

func InitCache(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", "error", err, "addr", cfg.Addr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	instance = &Cache{client: client}
	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return instance, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

// AddToTokenBlacklist records a revoked token until its natural expiry.
func (c *Cache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.TokenBlacklistScope+token, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a token has been revoked.
func (c *Cache) IsTokenBlacklisted(ctx context.Context, token string) bool {
	n, err := c.client.Exists(ctx, constants.TokenBlacklistScope+token).Result()
	if err != nil {
		logger.Error("Cache:IsTokenBlacklisted", "error", err)
		return false
	}
	return n > 0
}

// IncrementLoginAttempt bumps the failed-login counter for an email and
// returns the new count.
func (c *Cache) IncrementLoginAttempt(ctx context.Context, email string) (int64, error) {
	key := constants.LoginAttemptScope + email
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		_ = c.client.Expire(ctx, key, constants.LoginBlockDuration).Err()
	}
	return n, nil
}

// IsLoginBlocked reports whether the email has exceeded the allowed
// failed-login attempts.
func (c *Cache) IsLoginBlocked(ctx context.Context, email string) bool {
	n, err := c.client.Get(ctx, constants.LoginAttemptScope+email).Int64()
	if err != nil {
		return false
	}
	return n >= constants.MaxLoginAttempts
}

// ResetLoginAttempts clears the failed-login counter after a successful login.
func (c *Cache) ResetLoginAttempts(ctx context.Context, email string) {
	if err := c.client.Del(ctx, constants.LoginAttemptScope+email).Err(); err != nil {
		logger.Error("Cache:ResetLoginAttempts", "error", err, "email", email)
	}
}

func (c *Cache) Close() error {
	return c.client.Close()
}
