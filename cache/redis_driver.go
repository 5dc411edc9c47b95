package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kengibson1111/go-cachedriver-redis/internal"
)

// RedisDriver implements the Driver contract against a Redis-compatible
// server. The zero value is not usable; construct one with NewRedisDriver or
// NewPooledRedisDriver.
//
// A RedisDriver is a value. Connect and Disconnect return the next state and
// leave the receiver untouched, so connectedness follows the value the caller
// threads forward. The non-pooled variant holds one dedicated connection and
// provides no internal synchronization; the pooled variant multiplexes up to
// Config.PoolSize connections and supports concurrent operations on the same
// value, with thread safety delegated to the underlying pool.
type RedisDriver struct {
	cfg    Config
	conn   internal.Conn
	pooled bool
	logger *zap.Logger
}

var _ Driver = RedisDriver{}

// DriverOption customizes a RedisDriver at construction time.
type DriverOption func(*RedisDriver)

// WithLogger attaches a structured logger to the driver. Without it the
// driver does not log.
func WithLogger(logger *zap.Logger) DriverOption {
	return func(d *RedisDriver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewRedisDriver creates the non-pooled variant: the driver owns a single
// long-lived connection established by Connect.
func NewRedisDriver(cfg Config, opts ...DriverOption) (RedisDriver, error) {
	return newDriver(cfg, false, opts)
}

// NewPooledRedisDriver creates the pooled variant: Connect starts a pool of
// up to cfg.PoolSize connections, checked out per operation.
func NewPooledRedisDriver(cfg Config, opts ...DriverOption) (RedisDriver, error) {
	return newDriver(cfg, true, opts)
}

func newDriver(cfg Config, pooled bool, opts []DriverOption) (RedisDriver, error) {
	if err := cfg.Validate(); err != nil {
		return RedisDriver{}, fmt.Errorf("invalid configuration: %w", err)
	}

	d := RedisDriver{
		cfg:    cfg,
		pooled: pooled,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d, nil
}

// NewRedisDriverWithConn creates a driver already holding the given
// connection handle, bypassing Connect. It exists for testing with injected
// dependencies.
func NewRedisDriverWithConn(cfg Config, conn internal.Conn, opts ...DriverOption) RedisDriver {
	d := RedisDriver{
		cfg:    cfg,
		conn:   conn,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Connected reports whether this driver value holds a live connection.
func (d RedisDriver) Connected() bool {
	return d.conn != nil
}

// Config returns the driver configuration.
func (d RedisDriver) Config() Config {
	return d.cfg
}

// Connect establishes the connection or pool described by the configuration
// and returns the connected driver state. The startup handshake is bounded by
// cfg.Timeout for the single variant and by the pool start timeout for the
// pooled variant.
func (d RedisDriver) Connect(ctx context.Context) (Driver, error) {
	if d.conn != nil {
		return d, &DriverError{Op: OpConnect, Err: ErrAlreadyConnected}
	}

	opts := startOptions(d.cfg)

	var (
		conn internal.Conn
		err  error
	)
	if d.pooled {
		conn, err = internal.DialPool(ctx, d.cfg.Addr(), opts, d.cfg.Timeout, d.cfg.PoolSize)
	} else {
		conn, err = internal.DialSingle(ctx, d.cfg.Addr(), opts, d.cfg.Timeout)
	}
	if err != nil {
		d.logger.Warn("connect failed", zap.String("addr", d.cfg.Addr()), zap.Error(err))
		return d, &DriverError{Op: OpConnect, Err: NewStartError(err)}
	}

	d.logger.Debug("connected",
		zap.String("addr", d.cfg.Addr()),
		zap.Bool("pooled", d.pooled))

	next := d
	next.conn = conn
	return next, nil
}

// Disconnect gracefully shuts down the connection or pool and returns the
// disconnected driver state. In-flight pool checkouts are not force-killed.
func (d RedisDriver) Disconnect(ctx context.Context) (Driver, error) {
	if d.conn == nil {
		return d, &DriverError{Op: OpDisconnect, Err: ErrNotConnected}
	}

	if err := d.conn.Close(); err != nil {
		d.logger.Warn("disconnect failed", zap.String("addr", d.cfg.Addr()), zap.Error(err))
		return d, &DriverError{Op: OpDisconnect, Err: NewShutdownError(err)}
	}

	d.logger.Debug("disconnected", zap.String("addr", d.cfg.Addr()))

	next := d
	next.conn = nil
	return next, nil
}

// Set writes value under the composed key, then applies the requested expiry
// state. The two wire operations are sequential and each bounded by
// cfg.Timeout; they are not atomic, so on error the value may or may not have
// been written.
func (d RedisDriver) Set(ctx context.Context, resourceType, key, value string, ttl time.Duration) error {
	if d.conn == nil {
		return &DriverError{Op: OpSet, Err: ErrNotConnected}
	}

	composed := internal.ComposeKey(resourceType, key)

	if err := d.conn.Set(ctx, composed, value); err != nil {
		return d.opError(OpSet, composed, translateError(err))
	}

	if ttl > 0 {
		ok, err := d.conn.Expire(ctx, composed, ttl)
		if err != nil {
			return d.opError(OpSet, composed, translateError(err))
		}
		if !ok {
			// The key vanished between SET and EXPIRE. The caller cannot
			// distinguish this race from a protocol anomaly, so it is
			// reported as an uninterpretable outcome.
			return d.opError(OpSet, composed,
				NewUnknownResponseError("key disappeared before expiry could be applied", nil))
		}
		return nil
	}

	// PERSIST replies false both for "no expiry to clear" (the normal case
	// for a freshly set key) and for a key that vanished, so a false reply is
	// not an error on this branch.
	if _, err := d.conn.Persist(ctx, composed); err != nil {
		return d.opError(OpSet, composed, translateError(err))
	}
	return nil
}

// Get reads the value under the composed key, bounded by cfg.Timeout. A cache
// miss is reported as ErrTooFewRecords.
func (d RedisDriver) Get(ctx context.Context, resourceType, key string) (string, error) {
	if d.conn == nil {
		return "", &DriverError{Op: OpGet, Err: ErrNotConnected}
	}

	composed := internal.ComposeKey(resourceType, key)

	value, err := d.conn.Get(ctx, composed)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", &DriverError{Op: OpGet, Err: ErrTooFewRecords}
		}
		return "", d.opError(OpGet, composed, translateError(err))
	}
	return value, nil
}

// Delete removes the composed key, bounded by cfg.Timeout. Deleting an absent
// key succeeds.
func (d RedisDriver) Delete(ctx context.Context, resourceType, key string) error {
	if d.conn == nil {
		return &DriverError{Op: OpDelete, Err: ErrNotConnected}
	}

	composed := internal.ComposeKey(resourceType, key)

	if err := d.conn.Del(ctx, composed); err != nil {
		return d.opError(OpDelete, composed, translateError(err))
	}
	return nil
}

// Health performs a PING round-trip on the live connection, bounded by
// cfg.Timeout.
func (d RedisDriver) Health(ctx context.Context) error {
	if d.conn == nil {
		return ErrNotConnected
	}

	if err := d.conn.Ping(ctx); err != nil {
		return translateError(err)
	}
	return nil
}

// Flush removes every key under the given resource type namespace using SCAN
// followed by a batched DEL.
func (d RedisDriver) Flush(ctx context.Context, resourceType string) error {
	if d.conn == nil {
		return &DriverError{Op: OpDelete, Err: ErrNotConnected}
	}

	pattern := internal.KeyPattern(resourceType)

	keys, err := d.conn.Scan(ctx, pattern)
	if err != nil {
		return d.opError(OpDelete, pattern, translateError(err))
	}

	if len(keys) == 0 {
		return nil
	}

	if err := d.conn.Del(ctx, keys...); err != nil {
		return d.opError(OpDelete, pattern, translateError(err))
	}

	d.logger.Debug("flushed namespace",
		zap.String("resource_type", resourceType),
		zap.Int("keys_deleted", len(keys)))
	return nil
}

// ConnectionInfo returns a snapshot of the configured address and, when
// connected, the underlying pool statistics.
func (d RedisDriver) ConnectionInfo() map[string]interface{} {
	info := map[string]interface{}{
		"addr":      d.cfg.Addr(),
		"pooled":    d.pooled,
		"connected": d.conn != nil,
	}
	if d.pooled {
		info["pool_size"] = d.cfg.PoolSize
	}

	if d.conn != nil {
		if stats := d.conn.PoolStats(); stats != nil {
			info["pool_hits"] = stats.Hits
			info["pool_misses"] = stats.Misses
			info["pool_timeouts"] = stats.Timeouts
			info["pool_total_conns"] = stats.TotalConns
			info["pool_idle_conns"] = stats.IdleConns
		}
	}
	return info
}

func (d RedisDriver) opError(op Op, key string, rerr *RedisError) error {
	d.logger.Warn("operation failed",
		zap.String("op", string(op)),
		zap.String("key", key),
		zap.String("code", rerr.Code.String()),
		zap.Error(rerr))
	return &DriverError{Op: op, Err: rerr}
}
