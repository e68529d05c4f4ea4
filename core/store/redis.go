package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const (
	redisStateKey = "geobridge:adapter:state"

	fieldAPIKey  = "api_key"
	fieldStarted = "started"
)

// Redis is a Store backed by a redis hash, for deployments where adapter
// state must survive the host as well as the process.
type Redis struct {
	rdb *redis.Client
}

// NewRedis connects to redis and verifies the connection with a bounded
// exponential backoff before returning the store.
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return rdb.Ping(pingCtx).Err()
	}
	if err := backoff.Retry(ping, policy); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to reach redis at '%s': %w", addr, err)
	}

	return &Redis{rdb: rdb}, nil
}

// NewRedisWithClient wraps an existing client, typically a test client.
func NewRedisWithClient(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// Load reads the persisted state. An absent hash yields the zero State.
func (r *Redis) Load(ctx context.Context) (State, error) {
	vals, err := r.rdb.HGetAll(ctx, redisStateKey).Result()
	if err != nil {
		return State{}, fmt.Errorf("failed to load adapter state: %w", err)
	}
	return State{
		APIKey:  vals[fieldAPIKey],
		Started: vals[fieldStarted] == "true",
	}, nil
}

// Save replaces the persisted state.
func (r *Redis) Save(ctx context.Context, state State) error {
	started := "false"
	if state.Started {
		started = "true"
	}
	if err := r.rdb.HSet(ctx, redisStateKey,
		fieldAPIKey, state.APIKey,
		fieldStarted, started,
	).Err(); err != nil {
		return fmt.Errorf("failed to save adapter state: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
