package db

import "context"

// RedisClient defines the Redis operations used by the run log.
type RedisClient interface {
	// PushCapped prepends value to the list at key and trims the list to its newest size entries.
	PushCapped(ctx context.Context, key, value string, size int) error
	// Range returns list entries start..stop inclusive; negative indexes count from the tail.
	Range(ctx context.Context, key string, start, stop int) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}
