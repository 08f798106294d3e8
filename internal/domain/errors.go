package domain

import "errors"

var (
	// ErrAnalyticsDisabled signals that no analytics store is configured.
	ErrAnalyticsDisabled = errors.New("analytics disabled")
	// ErrCatalogInvalid signals a malformed embedded catalog.
	ErrCatalogInvalid = errors.New("invalid catalog")
)
