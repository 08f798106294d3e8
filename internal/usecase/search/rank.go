package search

import (
	"sort"

	"github.com/yash171102/shopquery/internal/domain/catalog"
	"github.com/yash171102/shopquery/internal/domain/profile"
	"github.com/yash171102/shopquery/internal/domain/search/result"
)

// rank resolves result flags and orders the filtered candidates.
// Without a returning user the catalog order and catalog-declared flags pass
// through untouched. For a returning user the personalized flag is recomputed
// from the user's favored brands and categories (an explicit override; the
// catalog-declared value is discarded) and the list is stable-sorted:
// personalized first, then merchandised, then rating descending.
func rank(items []catalog.Item, user *profile.Profile) []result.Result {
	results := make([]result.Result, len(items))
	for i := range items {
		results[i] = result.FromCatalog(items[i])
	}

	if user == nil || !user.IsReturning() {
		return results
	}

	prefs := user.Preferences()
	for i := range results {
		item := results[i].Item()
		personalized := prefs.FavorsBrand(item.Brand()) || prefs.FavorsCategory(item.Category())
		results[i] = results[i].WithPersonalized(personalized)
	}

	sort.SliceStable(results, func(a, b int) bool {
		ra, rb := &results[a], &results[b]
		if ra.Personalized() != rb.Personalized() {
			return ra.Personalized()
		}
		if ra.Merchandised() != rb.Merchandised() {
			return ra.Merchandised()
		}
		ia, ib := ra.Item(), rb.Item()
		return ia.Rating() > ib.Rating()
	})

	return results
}
