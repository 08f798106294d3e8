// Package db defines the storage facade backing the analytics counters.
// Consumers depend on the narrow sub-interfaces, not on Store.
package db

import (
	"context"
	"time"
)

// Store is the database facade combining all sub-interfaces.
type Store interface {
	Pinger
	KVStore
	SortedSetStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) error
}

// Member is a sorted-set member with its score.
type Member struct {
	Member string
	Score  float64
}

// SortedSetStore provides sorted-set counter operations.
type SortedSetStore interface {
	ZIncrBy(ctx context.Context, key string, incr int64, member string) error
	ZTop(ctx context.Context, key string, n int) ([]Member, error)
}
