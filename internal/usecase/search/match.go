package search

import (
	"strings"

	"github.com/yash171102/shopquery/internal/domain/catalog"
	"github.com/yash171102/shopquery/internal/domain/query"
)

// textMatch reports whether the item's search text contains the whole
// corrected query, or any single word of it, as a substring.
func textMatch(item *catalog.Item, corrected string) bool {
	blob := item.SearchText()
	if strings.Contains(blob, corrected) {
		return true
	}
	for _, word := range strings.Fields(corrected) {
		if strings.Contains(blob, word) {
			return true
		}
	}
	return false
}

// semanticMatch starts true and is falsified by any violated inferred
// constraint: brand not contained in the item's brand, color not contained in
// the serialized attribute set, or price above the ceiling.
func semanticMatch(item *catalog.Item, sem query.Semantic) bool {
	if brand, ok := sem.Brand(); ok {
		if !strings.Contains(strings.ToLower(item.Brand()), brand) {
			return false
		}
	}
	if color, ok := sem.Color(); ok {
		if !strings.Contains(item.AttributesBlob(), color) {
			return false
		}
	}
	if ceiling, ok := sem.PriceCeiling(); ok {
		if item.Price() > ceiling {
			return false
		}
	}
	return true
}

// matches applies the inclusion rule: textMatch OR semanticMatch. The OR is
// deliberate high-recall behavior: a semantic-only hit with no lexical
// overlap is included, and so is a lexical hit with a violated semantic
// constraint.
func matches(item *catalog.Item, corrected string, sem query.Semantic) bool {
	return textMatch(item, corrected) || semanticMatch(item, sem)
}

// passesFilters applies caller constraints strictly: brand set AND category
// set AND inclusive price range.
func passesFilters(item *catalog.Item, filters query.Filters) bool {
	return filters.BrandAllowed(item.Brand()) &&
		filters.CategoryAllowed(item.Category()) &&
		filters.PriceAllowed(item.Price())
}
