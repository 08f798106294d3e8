package search

import (
	"testing"

	"github.com/yash171102/shopquery/internal/domain/profile"
)

func TestRank_NilUserPassesThrough(t *testing.T) {
	items := fixtureItems()
	results := rank(items, nil)

	if len(results) != len(items) {
		t.Fatalf("len = %d, want %d", len(results), len(items))
	}
	for i := range results {
		if results[i].Item().ID() != items[i].ID() {
			t.Fatalf("position %d: got item %d, want %d", i, results[i].Item().ID(), items[i].ID())
		}
		if results[i].Personalized() != items[i].Personalized() {
			t.Errorf("item %d: personalized flag changed", items[i].ID())
		}
	}
}

func TestRank_NewUserPassesThrough(t *testing.T) {
	items := fixtureItems()
	results := rank(items, newUser())

	for i := range results {
		if results[i].Item().ID() != items[i].ID() {
			t.Fatalf("non-returning user must not reorder results")
		}
	}
}

func TestRank_ReturningUserRecomputesFlagsAndSorts(t *testing.T) {
	items := fixtureItems()
	prefs := profile.NewPreferences([]string{"Nike"}, nil, nil, 0, 0)
	results := rank(items, returningUser(prefs))

	// Nike (personalized) first, then merchandised by rating (Adidas 4.7,
	// MAC 4.3), then the rest by rating descending.
	wantOrder := []int{1, 2, 3, 6, 4, 5}
	for i, want := range wantOrder {
		if got := results[i].Item().ID(); got != want {
			t.Fatalf("position %d: got item %d, want %d", i, got, want)
		}
	}

	if !results[0].Personalized() {
		t.Error("Nike result should be personalized for a Nike-favoring user")
	}
	// Catalog declares Adidas personalized, but the override discards that.
	if results[1].Personalized() {
		t.Error("Adidas result should lose its catalog-declared personalized flag")
	}
}

func TestRank_CategoryPreferencePersonalizes(t *testing.T) {
	items := fixtureItems()
	prefs := profile.NewPreferences(nil, []string{"Lipstick"}, nil, 0, 0)
	results := rank(items, returningUser(prefs))

	// Both lipsticks personalized: MAC (4.3) ahead of L'Oréal (4.1).
	if results[0].Item().ID() != 3 || results[1].Item().ID() != 4 {
		t.Fatalf("got leading items %d, %d; want 3, 4",
			results[0].Item().ID(), results[1].Item().ID())
	}
}

func TestRank_StableForTies(t *testing.T) {
	items := fixtureItems()
	// No preferences match anything: every flag recomputes to false, so the
	// order reduces to merchandised-then-rating with stable ties.
	results := rank(items, returningUser(profile.Preferences{}))

	wantOrder := []int{2, 3, 1, 6, 4, 5}
	for i, want := range wantOrder {
		if got := results[i].Item().ID(); got != want {
			t.Fatalf("position %d: got item %d, want %d", i, got, want)
		}
	}
}
