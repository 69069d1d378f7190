package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by a shared Redis instance, for deployments
// where several generator processes should reuse each other's responses.
type RedisStore struct {
	Client *redis.Client
	// Prefix namespaces keys; defaults to "goroadmap:".
	Prefix string
	// TTL bounds entry lifetime. Zero keeps entries until evicted by Redis.
	TTL time.Duration
}

var _ Store = (*RedisStore)(nil)

// ParseURL validates a Redis connection URL.
func ParseURL(url string) (*redis.Options, error) {
	if url == "" {
		return nil, fmt.Errorf("cache URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid cache URL: %w", err)
	}
	return opts, nil
}

// NewRedisStore connects to url and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := ParseURL(url)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}
	return &RedisStore{Client: client, TTL: ttl}, nil
}

func (s *RedisStore) key(k string) string {
	if s.Prefix == "" {
		return "goroadmap:" + k
	}
	return s.Prefix + k
}

// Get returns the cached value for key. redis.Nil is reported as a miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.Client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return b, true, nil
}

// Save stores data under key with the configured TTL.
func (s *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.Client.Set(ctx, s.key(key), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (s *RedisStore) Close() error {
	return s.Client.Close()
}
