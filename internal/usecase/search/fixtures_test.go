package search

import (
	"context"

	"github.com/yash171102/shopquery/internal/domain/catalog"
	"github.com/yash171102/shopquery/internal/domain/profile"
)

// --- Mocks ---

type mockCatalog struct {
	items []catalog.Item
}

func (m *mockCatalog) Items() []catalog.Item { return m.items }

type mockRecorder struct {
	terms   []string
	counts  []int
	calls   int
	lastCtx context.Context
}

func (m *mockRecorder) RecordSearch(ctx context.Context, term string, results int) {
	m.calls++
	m.terms = append(m.terms, term)
	m.counts = append(m.counts, results)
	m.lastCtx = ctx
}

// fixtureItems mirrors the embedded catalog: two running shoes, two
// lipsticks, two shampoos.
func fixtureItems() []catalog.Item {
	return []catalog.Item{
		catalog.Reconstruct(1, "Nike Air Max 270", "Nike", "Running Shoes",
			150, "USD", "/placeholder.svg", 4.5, 1250, true, false, catalog.MerchNone,
			map[string]any{"color": "Black", "size": []any{"8", "9", "10", "11"}, "material": "Mesh"}),
		catalog.Reconstruct(2, "Adidas Ultraboost 22", "Adidas", "Running Shoes",
			180, "USD", "/placeholder.svg", 4.7, 890, true, true, catalog.MerchBoost,
			map[string]any{"color": "White", "size": []any{"7", "8", "9", "10", "11"}, "material": "Primeknit"}),
		catalog.Reconstruct(3, "MAC Ruby Woo Lipstick", "MAC", "Lipstick",
			19, "USD", "/placeholder.svg", 4.3, 2100, false, true, catalog.MerchPin,
			map[string]any{"color": "Red", "finish": "Matte"}),
		catalog.Reconstruct(4, "L'Oréal Color Riche Lipstick", "L'Oréal", "Lipstick",
			12, "USD", "/placeholder.svg", 4.1, 750, false, false, catalog.MerchNone,
			map[string]any{"color": "Pink", "finish": "Satin"}),
		catalog.Reconstruct(5, "Head & Shoulders Shampoo", "Head & Shoulders", "Hair Care",
			8, "USD", "/placeholder.svg", 4.0, 1800, false, false, catalog.MerchNone,
			map[string]any{"type": "Anti-Dandruff", "size": "400ml"}),
		catalog.Reconstruct(6, "L'Oréal Professional Shampoo", "L'Oréal", "Hair Care",
			25, "USD", "/placeholder.svg", 4.4, 450, false, false, catalog.MerchNone,
			map[string]any{"type": "For Oily Hair", "size": "300ml"}),
	}
}

func returningUser(prefs profile.Preferences, history ...string) *profile.Profile {
	p := profile.New(1, "jane@example.com", "Jane", "Doe", true, prefs, history)
	return &p
}

func newUser() *profile.Profile {
	p := profile.New(2, "sam@example.com", "Sam", "Lee", false, profile.Preferences{}, nil)
	return &p
}
