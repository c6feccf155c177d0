package redis

// DURABLE KEY-VALUE CLIENT

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Nil is re-exported so callers can detect missing keys without
// importing the driver.
const Nil = redis.Nil

type Client struct {
	client *redis.Client
}

// New creates a Redis client. Call Connect before first use.
func New(addr, password string, db int) *Client {
	return &Client{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Connect pings the server with exponential backoff until it answers
// or the retry budget runs out.
func (c *Client) Connect(ctx context.Context, logger *zap.Logger) error {
	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 1 * time.Minute
	retryPolicy.MaxInterval = 10 * time.Second

	err := backoff.RetryNotify(
		func() error {
			if err := c.client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("Redis connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return fmt.Errorf("connect after retries: %w", err)
	}
	return nil
}

// Get retrieves a key's value. Returns Nil when the key is absent.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

// Set stores a key's value. A zero ttl persists the key indefinitely.
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Del deletes a key.
func (c *Client) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the connection.
func (c *Client) Close() {
	if c.client != nil {
		_ = c.client.Close()
	}
}
