// Package checkout provides the per-user lock that serializes order
// materialization. Two concurrent checkouts for one user would both
// pass the enrollment-duplication check before either writes; the
// lock closes that window.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefixCheckoutLock = "edumart:checkout:lock:"

	defaultLockTTL = 30 * time.Second
)

// ErrLockNotAcquired is returned when another checkout holds the
// user's lock.
var ErrLockNotAcquired = errors.New("failed to acquire checkout lock")

// Locker serializes checkouts per user.
type Locker interface {
	// Acquire takes the user's checkout lock. The returned release
	// function must be called when the checkout finishes; the TTL
	// bounds the hold if the process dies mid-flow.
	Acquire(ctx context.Context, userID string) (release func(), err error)
}

// redisLocker implements Locker with a SETNX lock per user.
type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocker creates a Redis-backed checkout Locker.
func NewLocker(client *redis.Client) Locker {
	return &redisLocker{client: client, ttl: defaultLockTTL}
}

func (l *redisLocker) Acquire(ctx context.Context, userID string) (func(), error) {
	lockKey := keyPrefixCheckoutLock + userID
	lockValue := fmt.Sprintf("%s:%d", uuid.New().String(), time.Now().UnixNano())

	acquired, err := l.client.SetNX(ctx, lockKey, lockValue, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return nil, ErrLockNotAcquired
	}

	release := func() {
		// Only delete the lock if we still own it.
		current, err := l.client.Get(context.Background(), lockKey).Result()
		if err != nil || current != lockValue {
			return
		}
		l.client.Del(context.Background(), lockKey)
	}
	return release, nil
}
