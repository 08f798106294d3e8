// Package analytics aggregates search events into a usage report.
package analytics

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yash171102/shopquery/internal/domain"
	"github.com/yash171102/shopquery/internal/logger"
)

// DefaultTopTerms is the number of top search terms in a report.
const DefaultTopTerms = 5

// Report is the computed analytics summary.
type Report struct {
	TotalSearches       int64
	AvgResultsPerSearch float64
	ZeroResultsRate     float64
	TopTerms            []TermCount
}

// Service records search events and computes reports. A nil store disables
// analytics: recording becomes a no-op and reports fail with
// domain.ErrAnalyticsDisabled.
type Service struct {
	store    Store
	topTerms int
}

// New creates an analytics service. store may be nil.
func New(store Store) *Service {
	return &Service{store: store, topTerms: DefaultTopTerms}
}

// WithTopTerms overrides the number of top terms reported.
func (s *Service) WithTopTerms(n int) *Service {
	if n > 0 {
		s.topTerms = n
	}
	return s
}

// RecordSearch persists one search event. Best-effort: failures are logged
// and never surface to the search caller.
func (s *Service) RecordSearch(ctx context.Context, term string, results int) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordSearch(ctx, term, results); err != nil {
		logger.FromContext(ctx).Warn("record search event",
			zap.String("term", term),
			zap.Error(err),
		)
	}
}

// Report computes the aggregate summary from the stored counters.
func (s *Service) Report(ctx context.Context) (Report, error) {
	if s.store == nil {
		return Report{}, domain.ErrAnalyticsDisabled
	}

	searches, zeroResults, resultSum, err := s.store.Totals(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("read totals: %w", err)
	}

	report := Report{TotalSearches: searches}
	if searches > 0 {
		report.AvgResultsPerSearch = float64(resultSum) / float64(searches)
		report.ZeroResultsRate = float64(zeroResults) / float64(searches)
	}

	terms, err := s.store.TopTerms(ctx, s.topTerms)
	if err != nil {
		return Report{}, fmt.Errorf("read top terms: %w", err)
	}
	report.TopTerms = terms

	return report, nil
}
