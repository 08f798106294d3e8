// Package search implements the query interpretation pipeline: lexical
// correction, semantic extraction, candidate matching, constraint filtering,
// and personalization-aware ranking.
package search

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yash171102/shopquery/internal/domain/catalog"
	"github.com/yash171102/shopquery/internal/domain/profile"
	"github.com/yash171102/shopquery/internal/domain/query"
	"github.com/yash171102/shopquery/internal/domain/search/result"
	"github.com/yash171102/shopquery/internal/interpret"
	"github.com/yash171102/shopquery/internal/logger"
	"github.com/yash171102/shopquery/internal/metrics"
)

// Service executes searches over the static catalog. Each call is a pure
// function of its inputs; no state is shared between calls.
type Service struct {
	catalog  Catalog
	recorder Recorder
	delay    time.Duration
}

// New creates a search service.
func New(cat Catalog) *Service {
	return &Service{catalog: cat}
}

// WithRecorder attaches an analytics recorder.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// WithSimulatedLatency adds an artificial delay per search. Cosmetic,
// carries no correctness contract; zero disables it.
func (s *Service) WithSimulatedLatency(d time.Duration) *Service {
	s.delay = d
	return s
}

// Search runs the full pipeline and returns ordered results with resolved
// personalization and merchandising flags. An empty or whitespace-only query
// yields an empty list; no input is ever an error.
func (s *Service) Search(
	ctx context.Context, rawQuery string, user *profile.Profile, filters query.Filters,
) []result.Result {
	if s.delay > 0 {
		if err := sleep(ctx, s.delay); err != nil {
			return nil
		}
	}

	if strings.TrimSpace(rawQuery) == "" {
		return []result.Result{}
	}

	corrected := interpret.Correct(rawQuery)
	sem := interpret.Extract(corrected)

	log := logger.FromContext(ctx)
	log.Debug("query interpreted",
		zap.String("corrected", corrected),
		zap.Bool("semantic_empty", sem.IsEmpty()),
	)

	var candidates []catalog.Item
	for _, item := range s.catalog.Items() {
		if !matches(&item, corrected, sem) {
			continue
		}
		if !passesFilters(&item, filters) {
			continue
		}
		candidates = append(candidates, item)
	}

	results := rank(candidates, user)

	metrics.SearchesTotal.Inc()
	if len(results) == 0 {
		metrics.ZeroResultSearches.Inc()
	}
	if s.recorder != nil {
		s.recorder.RecordSearch(ctx, corrected, len(results))
	}

	return results
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
