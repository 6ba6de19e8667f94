package db

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// GoRedisClient implements RedisClient on top of go-redis.
type GoRedisClient struct {
	client *redis.Client
}

// NewGoRedisClient wraps client and checks the connection.
func NewGoRedisClient(ctx context.Context, client *redis.Client) (*GoRedisClient, error) {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", client.Options().Addr, err)
	}
	log.Info().Str("component", "redis").Str("addr", client.Options().Addr).Msg("Connected to Redis")

	return &GoRedisClient{client: client}, nil
}

func (r *GoRedisClient) PushCapped(ctx context.Context, key, value string, size int) error {
	if size < 1 {
		return fmt.Errorf("invalid list size %d", size)
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, value)
		pipe.LTrim(ctx, key, 0, int64(size-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push to list %s: %w", key, err)
	}
	return nil
}

func (r *GoRedisClient) Range(ctx context.Context, key string, start, stop int) ([]string, error) {
	values, err := r.client.LRange(ctx, key, int64(start), int64(stop)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read list %s: %w", key, err)
	}
	return values, nil
}

func (r *GoRedisClient) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}

func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
