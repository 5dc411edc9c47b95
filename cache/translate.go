package cache

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/redis/go-redis/v9"
)

// translateError maps an error from the underlying client or pool onto the
// closed RedisError taxonomy, one class at a time.
//
// A not-found (redis.Nil) must never reach this translator: every call site
// intercepts it first and maps it to its operation-specific meaning (cache
// miss, idempotent delete, benign race). One arriving here is a logic bug, so
// it is treated as fatal rather than silently classified.
func translateError(err error) *RedisError {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		panic("cache: not-found reached the generic error translator; call sites must intercept redis.Nil")
	}

	if errors.Is(err, redis.ErrClosed) {
		return NewActorError(err)
	}

	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "connection pool timeout") {
		return NewPoolError(err)
	}

	if isConnectionFailure(msg) {
		return NewConnectionError(err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewTCPError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return NewTCPError(err)
	}

	// Server-reported errors arrive as redis.Error replies carrying the
	// server's message.
	var serverErr redis.Error
	if errors.As(err, &serverErr) {
		return NewServerError(serverErr.Error())
	}

	return NewUnknownResponseError("unrecognized client error", err)
}

// isConnectionFailure reports whether a lowercased error message describes a
// failure to establish or keep a connection.
func isConnectionFailure(msg string) bool {
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "no route to host") ||
		strings.Contains(msg, "broken pipe")
}
