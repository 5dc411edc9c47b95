// Package cache provides a pluggable cache-driver adapter backed by a
// Redis-compatible server.
//
// The adapter implements a generic cache-driver contract — connect,
// disconnect, set, get, delete — over namespaced string keys with optional
// TTL, and maps every failure of the underlying client onto a small closed
// error taxonomy callers can branch on.
//
// # Architecture
//
// A driver is caller-threaded state: Connect and Disconnect return the next
// driver value instead of mutating shared memory, so a caller always holds a
// value that is either connected or not. Two variants share one contract and
// differ only in the connection they own:
//
//   - Non-pooled: one long-lived dedicated connection, one logical owner.
//   - Pooled: a bounded pool of connections checked out per operation,
//     supporting concurrent callers on the same driver value.
//
// Keys on the wire compose a resource type and a key with a colon:
// <resource_type>:<key>. The separator is not escaped.
//
// # Basic Usage
//
// Create a driver with default configuration and thread its state through the
// lifecycle:
//
//	cfg := cache.DefaultConfig()
//	cfg.Host = "localhost"
//
//	d, err := cache.NewRedisDriver(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	drv, err := d.Connect(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := drv.Set(ctx, "session", "abc123", "payload", time.Hour); err != nil {
//	    log.Fatal(err)
//	}
//
//	value, err := drv.Get(ctx, "session", "abc123")
//	if err != nil {
//	    if errors.Is(err, cache.ErrTooFewRecords) {
//	        log.Println("cache miss")
//	    } else {
//	        log.Fatal(err)
//	    }
//	}
//	_ = value
//
//	if _, err := drv.Disconnect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Operation failures arrive as *cache.DriverError wrapping either a common
// condition sentinel (cache.ErrAlreadyConnected, cache.ErrNotConnected,
// cache.ErrTooFewRecords) or a *cache.RedisError from the closed taxonomy:
//
//	err := drv.Set(ctx, "session", "abc123", "payload", 0)
//	var rerr *cache.RedisError
//	switch {
//	case err == nil:
//	case errors.Is(err, cache.ErrNotConnected):
//	    // driver misuse: operation before Connect
//	case errors.As(err, &rerr):
//	    switch rerr.Code {
//	    case cache.ErrorCodeConnection, cache.ErrorCodeTCP:
//	        // infrastructure failure, retry is the caller's decision
//	    case cache.ErrorCodeServer:
//	        // the server rejected the command; rerr.Message carries why
//	    }
//	}
//
// No retry is performed inside the adapter; every failure is returned to the
// caller.
package cache
