package integration

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kengibson1111/go-cachedriver-redis/cache"
)

// setupDriver starts an in-process Redis server and returns a connected
// driver state pointed at it.
func setupDriver(t *testing.T, pooled bool) (*miniredis.Miniredis, cache.Driver) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	host, portStr, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := cache.DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	cfg.Timeout = 2 * time.Second

	var d cache.RedisDriver
	if pooled {
		d, err = cache.NewPooledRedisDriver(cfg)
	} else {
		d, err = cache.NewRedisDriver(cfg)
	}
	require.NoError(t, err)

	drv, err := d.Connect(context.Background())
	require.NoError(t, err)

	return mr, drv
}

func TestLifecycle_Integration(t *testing.T) {
	for _, variant := range []struct {
		name   string
		pooled bool
	}{
		{"single", false},
		{"pooled", true},
	} {
		t.Run(variant.name, func(t *testing.T) {
			ctx := context.Background()
			_, drv := setupDriver(t, variant.pooled)

			// Connecting a connected driver is a programming error.
			_, err := drv.Connect(ctx)
			assert.ErrorIs(t, err, cache.ErrAlreadyConnected)

			disconnected, err := drv.Disconnect(ctx)
			require.NoError(t, err)

			// Disconnecting again has no target.
			_, err = disconnected.Disconnect(ctx)
			assert.ErrorIs(t, err, cache.ErrNotConnected)

			// The disconnected state can come back up.
			reconnected, err := disconnected.Connect(ctx)
			require.NoError(t, err)
			_, err = reconnected.Disconnect(ctx)
			require.NoError(t, err)
		})
	}
}

func TestConnect_ServerDown_Integration(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	host, portStr, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	port, _ := strconv.Atoi(portStr)
	mr.Close()

	cfg := cache.DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	cfg.Timeout = time.Second

	d, err := cache.NewRedisDriver(cfg)
	require.NoError(t, err)

	_, err = d.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, &cache.RedisError{Code: cache.ErrorCodeStart})
}

func TestSetGetDelete_Integration(t *testing.T) {
	ctx := context.Background()
	_, drv := setupDriver(t, false)

	require.NoError(t, drv.Set(ctx, "type", "key", "value", 0))

	value, err := drv.Get(ctx, "type", "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	require.NoError(t, drv.Delete(ctx, "type", "key"))

	_, err = drv.Get(ctx, "type", "key")
	assert.ErrorIs(t, err, cache.ErrTooFewRecords)

	// Deleting a key that never existed is idempotent.
	require.NoError(t, drv.Delete(ctx, "type", "never-existed"))
	_, err = drv.Get(ctx, "type", "never-existed")
	assert.ErrorIs(t, err, cache.ErrTooFewRecords)
}

func TestTTL_Expiry_Integration(t *testing.T) {
	ctx := context.Background()
	mr, drv := setupDriver(t, false)

	require.NoError(t, drv.Set(ctx, "type", "key", "value", time.Second))

	value, err := drv.Get(ctx, "type", "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	mr.FastForward(2 * time.Second)

	_, err = drv.Get(ctx, "type", "key")
	assert.ErrorIs(t, err, cache.ErrTooFewRecords)
}

func TestTTL_LaterSetOverrides_Integration(t *testing.T) {
	ctx := context.Background()
	mr, drv := setupDriver(t, false)

	require.NoError(t, drv.Set(ctx, "type", "key", "value", 100*time.Second))
	require.NoError(t, drv.Set(ctx, "type", "key", "value", time.Second))

	mr.FastForward(2 * time.Second)

	_, err := drv.Get(ctx, "type", "key")
	assert.ErrorIs(t, err, cache.ErrTooFewRecords)
}

func TestTTL_SetWithoutTTLClearsExpiry_Integration(t *testing.T) {
	ctx := context.Background()
	mr, drv := setupDriver(t, false)

	require.NoError(t, drv.Set(ctx, "type", "key", "value", time.Second))
	require.NoError(t, drv.Set(ctx, "type", "key", "value", 0))

	mr.FastForward(2 * time.Second)

	value, err := drv.Get(ctx, "type", "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestPooled_ConcurrentOperations_Integration(t *testing.T) {
	ctx := context.Background()
	_, drv := setupDriver(t, true)

	require.NoError(t, drv.Set(ctx, "shared", "key", "value", 0))

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func(n int) {
			key := "key-" + strconv.Itoa(n)
			if err := drv.Set(ctx, "worker", key, "value", 0); err != nil {
				done <- err
				return
			}
			if _, err := drv.Get(ctx, "shared", "key"); err != nil {
				done <- err
				return
			}
			done <- drv.Delete(ctx, "worker", key)
		}(i)
	}

	for i := 0; i < 20; i++ {
		assert.NoError(t, <-done)
	}
}

func TestFlush_Integration(t *testing.T) {
	ctx := context.Background()
	_, drv := setupDriver(t, false)

	rd, ok := drv.(cache.RedisDriver)
	require.True(t, ok)

	require.NoError(t, rd.Set(ctx, "session", "a", "1", 0))
	require.NoError(t, rd.Set(ctx, "session", "b", "2", 0))
	require.NoError(t, rd.Set(ctx, "user", "c", "3", 0))

	require.NoError(t, rd.Flush(ctx, "session"))

	_, err := rd.Get(ctx, "session", "a")
	assert.ErrorIs(t, err, cache.ErrTooFewRecords)
	_, err = rd.Get(ctx, "session", "b")
	assert.ErrorIs(t, err, cache.ErrTooFewRecords)

	value, err := rd.Get(ctx, "user", "c")
	require.NoError(t, err)
	assert.Equal(t, "3", value)
}

func TestHealth_Integration(t *testing.T) {
	ctx := context.Background()
	mr, drv := setupDriver(t, true)

	rd, ok := drv.(cache.RedisDriver)
	require.True(t, ok)

	require.NoError(t, rd.Health(ctx))

	info := rd.ConnectionInfo()
	assert.Equal(t, true, info["connected"])
	assert.Equal(t, mr.Addr(), info["addr"])
}
