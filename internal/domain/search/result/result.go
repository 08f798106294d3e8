package result

import "github.com/yash171102/shopquery/internal/domain/catalog"

// Result is a single search hit: a catalog item with its flags resolved for
// this search. The personalized flag may be recomputed for returning users;
// merchandising always comes from the catalog.
type Result struct {
	item         catalog.Item
	personalized bool
	merchandised bool
	merchKind    catalog.MerchKind
}

// FromCatalog creates a Result carrying the item's catalog-declared flags.
func FromCatalog(item catalog.Item) Result {
	return Result{
		item:         item,
		personalized: item.Personalized(),
		merchandised: item.Merchandised(),
		merchKind:    item.MerchandisingKind(),
	}
}

// Item returns the underlying catalog item.
func (r *Result) Item() catalog.Item { return r.item }

// Personalized reports whether the item is personalized for this search.
func (r *Result) Personalized() bool { return r.personalized }

// Merchandised reports whether the item is merchandised.
func (r *Result) Merchandised() bool { return r.merchandised }

// MerchandisingKind returns the merchandising treatment.
func (r *Result) MerchandisingKind() catalog.MerchKind { return r.merchKind }

// WithPersonalized returns a copy with the personalized flag overridden.
// Used at ranking time for returning users; the catalog-declared flag is
// irrelevant once a returning-user context exists.
func (r Result) WithPersonalized(v bool) Result {
	r.personalized = v
	return r
}
