package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotLocker serializes admission per (barber, start) key so two concurrent
// requests for the same slot cannot both pass the conflict check. The store's
// unique index is the backstop at commit time; the lock keeps the common case
// from ever racing.
type SlotLocker interface {
	// Acquire takes the lock, returning false when somebody else holds it.
	Acquire(key string, ttl time.Duration) (bool, error)
	// Release frees the lock early; expiry covers crashed holders.
	Release(key string)
}

const slotLockPrefix = "slotlock:"

// RedisSlotLocker implements SlotLocker with a SETNX lease.
type RedisSlotLocker struct {
	Client *redis.Client
}

func (l *RedisSlotLocker) Acquire(key string, ttl time.Duration) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ok, err := l.Client.SetNX(ctx, slotLockPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("error acquiring slot lock %s: %w", key, err)
	}
	return ok, nil
}

func (l *RedisSlotLocker) Release(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	l.Client.Del(ctx, slotLockPrefix+key)
}
