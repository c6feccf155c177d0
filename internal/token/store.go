// Package token persists the session credential outside the in-memory
// state so it survives process restarts.
package token

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"sixcities/pkg/redis"
)

// DefaultKey matches the key the browser variant used in localStorage.
const DefaultKey = "six-cities-token"

// Store holds one opaque session token. No shape validation happens
// here; an empty string means "no session".
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// RedisStore keeps the token under a fixed key with no expiry.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, key string, logger *zap.Logger) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context) (string, error) {
	value, err := s.client.Get(ctx, s.key)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0); err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Token implements api.TokenSource. Persistence errors degrade to an
// anonymous request rather than failing the call.
func (s *RedisStore) Token(ctx context.Context) string {
	value, err := s.Get(ctx)
	if err != nil {
		s.logger.Warn("token read failed", zap.Error(err))
		return ""
	}
	return value
}

// MemoryStore is an in-process store for tests and ephemeral sessions.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *MemoryStore) Token(ctx context.Context) string {
	value, _ := s.Get(ctx)
	return value
}
