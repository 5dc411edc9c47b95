package cache

import (
	"context"
	"time"
)

// Driver is the pluggable cache-driver contract a generic caching layer
// consumes. A Driver value is caller-threaded state: Connect and Disconnect
// return the next state instead of mutating the receiver, so a caller always
// holds exactly one value that is either connected or not, never partially.
//
// ResourceType and key compose into a single namespaced wire key
// (<resource_type>:<key>); see Set, Get and Delete.
//
// A ttl of zero (or negative) means the entry does not expire.
type Driver interface {
	// Connect establishes the underlying connection and returns the
	// connected driver state. Connecting an already-connected driver returns
	// ErrAlreadyConnected without touching the network.
	Connect(ctx context.Context) (Driver, error)

	// Disconnect gracefully shuts the connection down and returns the
	// disconnected driver state. Disconnecting a driver with no live
	// connection returns ErrNotConnected with no side effects.
	Disconnect(ctx context.Context) (Driver, error)

	// Set writes value under the composed key, then applies the requested
	// expiry state: EXPIRE for ttl > 0, PERSIST otherwise. The two wire
	// operations are not atomic; on error the value may or may not have been
	// written.
	Set(ctx context.Context, resourceType, key, value string, ttl time.Duration) error

	// Get reads the value under the composed key. A cache miss is reported
	// as ErrTooFewRecords, distinct from infrastructure failures.
	Get(ctx context.Context, resourceType, key string) (string, error)

	// Delete removes the composed key. Deleting an absent key is a success;
	// the operation is idempotent.
	Delete(ctx context.Context, resourceType, key string) error
}
