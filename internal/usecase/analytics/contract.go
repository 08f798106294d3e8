package analytics

import "context"

// TermCount is a search term with its occurrence count.
type TermCount struct {
	Term  string
	Count int64
}

// Store persists and reads search-event counters.
type Store interface {
	RecordSearch(ctx context.Context, term string, results int) error
	Totals(ctx context.Context) (searches, zeroResults, resultSum int64, err error)
	TopTerms(ctx context.Context, n int) ([]TermCount, error)
}
