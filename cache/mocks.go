package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	"github.com/kengibson1111/go-cachedriver-redis/internal"
)

var _ internal.Conn = (*MockConn)(nil)

// MockConn is a mock implementation of the internal connection handle for
// testing driver operations without a server.
type MockConn struct {
	mock.Mock
}

// NewMockConn creates a new mock connection handle.
func NewMockConn() *MockConn {
	return &MockConn{}
}

// Set mocks the Set method
func (m *MockConn) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Get mocks the Get method
func (m *MockConn) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// Del mocks the Del method
func (m *MockConn) Del(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// Expire mocks the Expire method
func (m *MockConn) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

// Persist mocks the Persist method
func (m *MockConn) Persist(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// Ping mocks the Ping method
func (m *MockConn) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Scan mocks the Scan method
func (m *MockConn) Scan(ctx context.Context, pattern string) ([]string, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// PoolStats mocks the PoolStats method
func (m *MockConn) PoolStats() *redis.PoolStats {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*redis.PoolStats)
}

// Close mocks the Close method
func (m *MockConn) Close() error {
	args := m.Called()
	return args.Error(0)
}
