package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLocks swaps the redis lock primitives for the duration of a test.
func stubLocks(t *testing.T, acquire func(context.Context, string, string, time.Duration) (bool, error), release func(context.Context, string, string) error) {
	t.Helper()
	origAcquire, origRelease, origDelay := acquireLock, releaseLock, lockRetryDelay
	acquireLock, releaseLock, lockRetryDelay = acquire, release, time.Millisecond
	t.Cleanup(func() {
		acquireLock, releaseLock, lockRetryDelay = origAcquire, origRelease, origDelay
	})
}

func TestWithLockRunsAndReleases(t *testing.T) {
	released := false
	stubLocks(t,
		func(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
			return true, nil
		},
		func(ctx context.Context, key, value string) error {
			released = true
			return nil
		},
	)

	ran := false
	require.NoError(t, withLock(context.Background(), "k", func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
	assert.True(t, released)
}

func TestWithLockRetriesThenSucceeds(t *testing.T) {
	attempts := 0
	stubLocks(t,
		func(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
			attempts++
			return attempts >= 2, nil
		},
		func(ctx context.Context, key, value string) error { return nil },
	)

	require.NoError(t, withLock(context.Background(), "k", func() error { return nil }))
	assert.Equal(t, 2, attempts)
}

func TestWithLockContendedWithoutError(t *testing.T) {
	stubLocks(t,
		func(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
			return false, nil
		},
		func(ctx context.Context, key, value string) error { return nil },
	)

	err := withLock(context.Background(), "k", func() error {
		t.Fatal("fn must not run without the lock")
		return nil
	})
	require.Error(t, err)
	// A contended lock with no redis error must still render a clean message.
	assert.NotContains(t, err.Error(), "%!w")
	assert.Contains(t, err.Error(), "failed to acquire lock")
}

func TestWithLockReportsAcquireError(t *testing.T) {
	acquireErr := errors.New("redis unavailable")
	stubLocks(t,
		func(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
			return false, acquireErr
		},
		func(ctx context.Context, key, value string) error { return nil },
	)

	err := withLock(context.Background(), "k", func() error { return nil })
	assert.ErrorIs(t, err, acquireErr)
}
