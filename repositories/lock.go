package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"OncoCare/database"
)

const (
	lockExpiry     = 10 * time.Second
	lockMaxRetries = 3
)

// Indirection over the redis lock primitives so lock behavior is testable
// without a live redis.
var (
	acquireLock    = database.NewLock
	releaseLock    = database.ReleaseLock
	lockRetryDelay = 2 * time.Second
)

// withLock runs fn while holding a redis lock on key, retrying acquisition a
// few times before giving up. The lock value is unique per attempt so only
// the owner can release it.
func withLock(ctx context.Context, key string, fn func() error) error {
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = acquireLock(ctx, key, lockValue, lockExpiry)
		if err == nil && locked {
			break
		}
		if i < lockMaxRetries-1 {
			time.Sleep(lockRetryDelay)
		}
	}
	if !locked {
		if err != nil {
			return fmt.Errorf("failed to acquire lock after retries: %w", err)
		}
		return errors.New("failed to acquire lock after retries: lock is held")
	}
	defer func() {
		if err := releaseLock(ctx, key, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	return fn()
}
