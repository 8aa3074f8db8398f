package history

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// RedisStore keeps the command log in a capped Redis list, newest first.
type RedisStore struct {
	client *backend.Client
	key    string
	cap    int64
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKey overrides the list key.
func WithKey(key string) RedisOption {
	return func(s *RedisStore) { s.key = key }
}

// WithCap bounds how many records the list retains.
func WithCap(n int64) RedisOption {
	return func(s *RedisStore) { s.cap = n }
}

// NewRedis creates a store with its own client.
func NewRedis(address, password string, db int, opts ...RedisOption) *RedisStore {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisFromClient(client, opts...)
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		key:    "voxctl:history",
		cap:    1000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append pushes one record and trims the list to its cap.
func (s *RedisStore) Append(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal history record: %w", err)
	}
	pipe := s.client.Pipeline()
	pipe.LPush(ctx, s.key, data)
	if s.cap > 0 {
		pipe.LTrim(ctx, s.key, 0, s.cap-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *RedisStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	raw, err := s.client.LRange(ctx, s.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal history record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
