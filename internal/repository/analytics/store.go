// Package analytics persists search-event counters in Redis.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/yash171102/shopquery/internal/db"
	"github.com/yash171102/shopquery/internal/usecase/analytics"
)

// store is the consumer interface for analytics operations (ISP).
type store interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) error
	ZIncrBy(ctx context.Context, key string, incr int64, member string) error
	ZTop(ctx context.Context, key string, n int) ([]db.Member, error)
}

const (
	keySearches    = "searches_total"
	keyZeroResults = "zero_results_total"
	keyResultSum   = "results_sum"
	keyTerms       = "terms"
)

// Store implements the analytics store contract on top of db counters.
type Store struct {
	store     store
	keyPrefix string
}

// New creates an analytics store. keyPrefix namespaces all keys
// (e.g. "shopquery:analytics:").
func New(s store, keyPrefix string) *Store {
	return &Store{store: s, keyPrefix: keyPrefix}
}

// RecordSearch persists one search event: total counter, zero-result counter,
// running result sum, and the per-term counter.
func (s *Store) RecordSearch(ctx context.Context, term string, results int) error {
	if err := s.store.IncrBy(ctx, s.key(keySearches), 1); err != nil {
		return fmt.Errorf("analytics INCRBY %s: %w", keySearches, err)
	}
	if results == 0 {
		if err := s.store.IncrBy(ctx, s.key(keyZeroResults), 1); err != nil {
			return fmt.Errorf("analytics INCRBY %s: %w", keyZeroResults, err)
		}
	} else {
		if err := s.store.IncrBy(ctx, s.key(keyResultSum), int64(results)); err != nil {
			return fmt.Errorf("analytics INCRBY %s: %w", keyResultSum, err)
		}
	}
	if err := s.store.ZIncrBy(ctx, s.key(keyTerms), 1, term); err != nil {
		return fmt.Errorf("analytics ZINCRBY %s: %w", keyTerms, err)
	}
	return nil
}

// Totals returns the aggregate counters. Missing keys read as zero.
func (s *Store) Totals(ctx context.Context) (searches, zeroResults, resultSum int64, err error) {
	if searches, err = s.counter(ctx, keySearches); err != nil {
		return 0, 0, 0, err
	}
	if zeroResults, err = s.counter(ctx, keyZeroResults); err != nil {
		return 0, 0, 0, err
	}
	if resultSum, err = s.counter(ctx, keyResultSum); err != nil {
		return 0, 0, 0, err
	}
	return searches, zeroResults, resultSum, nil
}

// TopTerms returns the n most frequent search terms, descending.
func (s *Store) TopTerms(ctx context.Context, n int) ([]analytics.TermCount, error) {
	members, err := s.store.ZTop(ctx, s.key(keyTerms), n)
	if err != nil {
		return nil, fmt.Errorf("analytics ZREVRANGE %s: %w", keyTerms, err)
	}
	terms := make([]analytics.TermCount, len(members))
	for i, m := range members {
		terms[i] = analytics.TermCount{Term: m.Member, Count: int64(m.Score)}
	}
	return terms, nil
}

// Ping checks store availability.
func (s *Store) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Store) counter(ctx context.Context, name string) (int64, error) {
	data, err := s.store.Get(ctx, s.key(name))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("analytics GET %s: %w", name, err)
	}
	val, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("analytics GET %s parse: %w", name, err)
	}
	return val, nil
}

func (s *Store) key(name string) string { return s.keyPrefix + name }
