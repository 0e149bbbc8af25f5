package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisPrefix namespaces keys as "{prefix}:{key}".
// Default: "localize".
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithRedisTTL sets how long results live. Zero or negative means no expiry.
// Default: 1 hour, so redeployed catalogs are picked up.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// OpenRedisStore connects to the redis:// or rediss:// URL, retrying the
// initial ping with a linear backoff, and returns a store over the new client.
// The returned close function releases the client.
func OpenRedisStore(ctx context.Context, url string, opts ...RedisOption) (*RedisStore, func() error, error) {
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidRedisURL, url)
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, errors.Join(ErrInvalidRedisURL, err)
	}

	client, err := dialRedis(ctx, redisOpts, 3, time.Second)
	if err != nil {
		return nil, nil, err
	}

	return NewRedisStore(client, opts...), client.Close, nil
}

func dialRedis(ctx context.Context, opts *redis.Options, attempts int, interval time.Duration) (*redis.Client, error) {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)

		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisUnavailable, ctx.Err())
		case <-time.After(time.Duration(i+1) * interval):
		}
	}

	return nil, errors.Join(ErrRedisUnavailable, lastErr)
}

// RedisStore shares resolution results between processes through Redis.
// Results are stored as JSON.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by client. The caller owns the client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "localize",
		ttl:    time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (Result, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Result{}, ErrNotFound
		}
		return Result{}, fmt.Errorf("catalog: redis get %q: %w", key, err)
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return Result{}, fmt.Errorf("catalog: decode stored result %q: %w", key, err)
	}
	return res, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key string, res Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("catalog: encode result %q: %w", key, err)
	}

	// Redis treats a zero expiration as "keep forever".
	if err := s.client.Set(ctx, s.key(key), data, max(s.ttl, 0)).Err(); err != nil {
		return fmt.Errorf("catalog: redis set %q: %w", key, err)
	}
	return nil
}

// Ping checks the connection to Redis.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrRedisUnavailable, err)
	}
	return nil
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

var _ Store = (*RedisStore)(nil)
