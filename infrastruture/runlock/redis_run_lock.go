// Package runlock implements the distributed run lock over Redis. One
// mutex per maze guarantees that replicas never race two algorithms
// against the same grid.
package runlock

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisRunLocker acquires per-maze mutexes through redsync.
type RedisRunLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
}

// NewRedisRunLocker initializes a RedisRunLocker with the provided Redis client and lock expiry.
func NewRedisRunLocker(client *redis.Client, expirySeconds int) (*RedisRunLocker, error) {
	pool := goredis.NewPool(client)
	return &RedisRunLocker{
		locker: redsync.New(pool),
		expiry: time.Duration(expirySeconds) * time.Second,
	}, nil
}

// Acquire takes the mutex for key and returns a release function. The lock
// expires on its own if a replica dies mid-run.
func (r *RedisRunLocker) Acquire(ctx context.Context, key string) (func() error, error) {
	mutex := r.locker.NewMutex(key, redsync.WithExpiry(r.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	release := func() error {
		_, err := mutex.Unlock()
		return err
	}
	return release, nil
}
