package shopquery

import "github.com/yash171102/shopquery/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrAnalyticsDisabled = domain.ErrAnalyticsDisabled
	ErrCatalogInvalid    = domain.ErrCatalogInvalid
)
