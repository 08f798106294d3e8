package health

import "context"

// CatalogChecker reports catalog load state.
type CatalogChecker interface {
	Len() int
}

// AnalyticsPinger checks analytics store availability.
type AnalyticsPinger interface {
	Ping(ctx context.Context) error
}
