package redis

import (
	"context"
	"fmt"
	"time"

	"agency-server/internal/config"
	"agency-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

var errNotInitialized = fmt.Errorf("redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient connects to Redis. It returns a nil client when Redis is disabled.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(ctx, "Redis is disabled, public lookups are not rate limited")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// ZAdd adds a member with score to a sorted set
func (c *Client) ZAdd(ctx context.Context, key string, score float64, member string) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

// ZRemRangeByScore removes the members scored within [min, max]
func (c *Client) ZRemRangeByScore(ctx context.Context, key string, min, max int64) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.ZRemRangeByScore(ctx, key, fmt.Sprintf("%d", min), fmt.Sprintf("%d", max)).Err()
}

// ZCard returns the number of members in a sorted set
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	if !c.IsEnabled() {
		return 0, errNotInitialized
	}
	return c.client.ZCard(ctx, key).Result()
}

// ZOldestScore returns the lowest score in a sorted set, or false when it is empty
func (c *Client) ZOldestScore(ctx context.Context, key string) (float64, bool, error) {
	if !c.IsEnabled() {
		return 0, false, errNotInitialized
	}
	members, err := c.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return 0, false, err
	}
	if len(members) == 0 {
		return 0, false, nil
	}
	return members[0].Score, true, nil
}

// Expire sets an expiration on a key
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) error {
	if !c.IsEnabled() {
		return errNotInitialized
	}
	return c.client.Expire(ctx, key, expiration).Err()
}
