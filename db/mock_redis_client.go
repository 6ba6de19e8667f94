package db

import (
	"context"
	"fmt"
	"sync"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	lists map[string][]string // Lists, head first
	mu    sync.RWMutex

	// FailWrites makes every write return an error.
	FailWrites bool
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		lists: make(map[string][]string),
	}
}

func (m *MockRedisClient) PushCapped(_ context.Context, key, value string, size int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("mock redis: write to %s refused", key)
	}
	if size < 1 {
		return fmt.Errorf("invalid list size %d", size)
	}
	list := append([]string{value}, m.lists[key]...)
	if len(list) > size {
		list = list[:size]
	}
	m.lists[key] = list
	return nil
}

// Range follows LRANGE index semantics.
func (m *MockRedisClient) Range(_ context.Context, key string, start, stop int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := m.lists[key]
	n := len(list)
	if start < 0 {
		start = max(n+start, 0)
	}
	if stop < 0 {
		stop = n + stop
	}
	stop = min(stop, n-1)
	if start > stop {
		return []string{}, nil
	}
	return append([]string(nil), list[start:stop+1]...), nil
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping(context.Context) error {
	return nil
}

func (m *MockRedisClient) Close() error {
	return nil
}
