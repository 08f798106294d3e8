package search

import (
	"context"

	"github.com/yash171102/shopquery/internal/domain/catalog"
)

// Catalog reads the static item catalog.
type Catalog interface {
	Items() []catalog.Item
}

// Recorder receives search events for analytics. Implementations must be
// best-effort: recording failures must never influence search results.
type Recorder interface {
	RecordSearch(ctx context.Context, term string, results int)
}
