package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// RedisOptions configures a RedisCache.
type RedisOptions struct {
	// host:port address of the server.
	Addr string
	// Optional password; must match the server's requirepass.
	Password string
	// Database selected after connecting.
	DB int
	// Backoff for the connection check in NewRedisCache.
	// The zero value uses DefaultBackoff.
	Backoff Backoff
}

// RedisCache stores entries in redis. Expiry is delegated to redis TTLs.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to redis and verifies the connection with PING,
// retrying with backoff. It fails with ErrUnavailable when the server cannot
// be reached.
func NewRedisCache(ctx context.Context, o RedisOptions) (*RedisCache, error) {
	if o.Addr == "" {
		return nil, fmt.Errorf("cache/redis: connection address is required")
	}
	backoff := o.Backoff
	if backoff.Attempts == 0 {
		backoff = DefaultBackoff
	}

	client := redis.NewClient(&redis.Options{
		Addr:     o.Addr,
		Password: o.Password,
		DB:       o.DB,
	})

	err := RetryWithBackoff(ctx, backoff, func() error {
		return Retryable(client.Ping(ctx).Err())
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache/redis: %w: %s: %w", ErrUnavailable, o.Addr, err)
	}
	return &RedisCache{client: client}, nil
}

// Get is equivalent to redis GET. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set is equivalent to redis SET with an optional expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete is equivalent to redis DEL.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Clear deletes every key matching pattern, scanning in batches so large
// databases are not blocked. An empty pattern matches all root entries.
func (c *RedisCache) Clear(ctx context.Context, pattern string) (int, error) {
	if pattern == "" {
		pattern = "*roots:*"
	}
	count := 0
	iter := c.client.Scan(ctx, 0, pattern, scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := c.client.Del(ctx, batch...).Result()
		count += int(n)
		batch = batch[:0]
		return err
	}
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := flush(); err != nil {
				return count, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return count, err
	}
	return count, flush()
}

// Addr returns the server address.
func (c *RedisCache) Addr() string {
	return c.client.Options().Addr
}

// Close closes the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
