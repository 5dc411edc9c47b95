package internal

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// PoolStartTimeout bounds the readiness ping issued while starting the pooled
// variant. Command timeouts are configured separately via the option list.
const PoolStartTimeout = 1 * time.Second

// Conn is the live connection handle created by a dial and consumed by the
// driver's operations. It is either a single dedicated connection or a pool
// handle that multiplexes up to the configured number of connections; the two
// behave identically at this level.
//
// Every command is bounded by the command timeout captured at dial time. A
// nil error from Close means the handle and any underlying connections were
// released.
type Conn interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Persist(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	PoolStats() *redis.PoolStats
	Close() error
}

// redisConn implements Conn over go-redis. cmd is the command surface (a
// dedicated *redis.Conn or the *redis.Client pool); client is always the
// owning client, kept for shutdown and pool stats.
type redisConn struct {
	cmd       redis.Cmdable
	client    *redis.Client
	dedicated *redis.Conn
	timeout   time.Duration
}

// DialSingle establishes the non-pooled variant: one long-lived dedicated
// connection checked out of a size-1 client. The readiness ping is bounded by
// cmdTimeout. On any failure the client is torn down and the raw error is
// returned for translation by the caller.
func DialSingle(ctx context.Context, addr string, opts []StartOption, cmdTimeout time.Duration) (Conn, error) {
	ro := &redis.Options{Addr: addr, PoolSize: 1}
	ApplyStartOptions(opts, ro)

	client := redis.NewClient(ro)
	dedicated := client.Conn()

	pingCtx, cancel := context.WithTimeout(ctx, cmdTimeout)
	defer cancel()

	if err := dedicated.Ping(pingCtx).Err(); err != nil {
		dedicated.Close()
		client.Close()
		return nil, err
	}

	return &redisConn{
		cmd:       dedicated,
		client:    client,
		dedicated: dedicated,
		timeout:   cmdTimeout,
	}, nil
}

// DialPool establishes the pooled variant: a client whose pool holds up to
// poolSize connections, checked out per command by go-redis. The readiness
// ping is bounded by PoolStartTimeout.
func DialPool(ctx context.Context, addr string, opts []StartOption, cmdTimeout time.Duration, poolSize int) (Conn, error) {
	ro := &redis.Options{Addr: addr, PoolSize: poolSize}
	ApplyStartOptions(opts, ro)

	client := redis.NewClient(ro)

	pingCtx, cancel := context.WithTimeout(ctx, PoolStartTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &redisConn{
		cmd:     client,
		client:  client,
		timeout: cmdTimeout,
	}, nil
}

func (c *redisConn) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func (c *redisConn) Set(ctx context.Context, key, value string) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.cmd.Set(ctx, key, value, 0).Err()
}

func (c *redisConn) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.cmd.Get(ctx, key).Result()
}

func (c *redisConn) Del(ctx context.Context, keys ...string) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.cmd.Del(ctx, keys...).Err()
}

func (c *redisConn) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.cmd.Expire(ctx, key, ttl).Result()
}

func (c *redisConn) Persist(ctx context.Context, key string) (bool, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.cmd.Persist(ctx, key).Result()
}

func (c *redisConn) Ping(ctx context.Context) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return c.cmd.Ping(ctx).Err()
}

// Scan collects every key matching pattern. The whole iteration shares one
// timeout window.
func (c *redisConn) Scan(ctx context.Context, pattern string) ([]string, error) {
	ctx, cancel := c.bound(ctx)
	defer cancel()

	var keys []string
	iter := c.cmd.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (c *redisConn) PoolStats() *redis.PoolStats {
	return c.client.PoolStats()
}

// Close shuts down the handle. The dedicated connection, when present, is
// released back before the owning client is closed; pool shutdown waits for
// in-flight checkouts per go-redis semantics.
func (c *redisConn) Close() error {
	var firstErr error
	if c.dedicated != nil {
		if err := c.dedicated.Close(); err != nil {
			firstErr = err
		}
	}
	if err := c.client.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
