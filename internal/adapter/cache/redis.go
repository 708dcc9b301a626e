package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"cftracker/internal/domain/model"
	"cftracker/internal/domain/ports"
)

const keyPrefix = "cftracker:submissions:"

// RedisCache stores submission histories in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.SubmissionCache = (*RedisCache)(nil)

// RedisOptions configures the Redis connection.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", opts.Addr, err)
	}

	return &RedisCache{client: client, ttl: opts.TTL}, nil
}

// Key returns the Redis key used for handle. Handles are case-insensitive on Codeforces.
func Key(handle string) string {
	return keyPrefix + strings.ToLower(handle)
}

// Get returns the cached submissions of handle.
func (c *RedisCache) Get(ctx context.Context, handle string) ([]model.Submission, bool, error) {
	data, err := c.client.Get(ctx, Key(handle)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, fmt.Errorf("decode cached submissions: %w", err)
	}
	return fromEntries(entries), true, nil
}

// Set stores the submissions of handle for the configured TTL.
func (c *RedisCache) Set(ctx context.Context, handle string, submissions []model.Submission) error {
	data, err := json.Marshal(toEntries(submissions))
	if err != nil {
		return fmt.Errorf("encode submissions: %w", err)
	}
	if err := c.client.Set(ctx, Key(handle), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
