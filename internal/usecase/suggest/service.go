// Package suggest generates query completions from a fixed vocabulary and the
// user's own search history.
package suggest

import (
	"context"
	"strings"

	"github.com/yash171102/shopquery/internal/domain/profile"
	"github.com/yash171102/shopquery/internal/interpret"
)

// MaxSuggestions caps the suggestion list length.
const MaxSuggestions = 6

// vocabulary is the fixed suggestion pool. Entries are stored lower-cased;
// matching is case-insensitive substring containment against the corrected
// query.
var vocabulary = []string{
	"running shoes",
	"running sneakers",
	"lipstick red",
	"lipstick matte",
	"shampoo for oily hair",
	"shampoo for dandruff",
	"shampoo loreal",
	"nike air max",
	"adidas running shoes",
	"black leather jacket",
}

// Service generates suggestions. Stateless; safe for concurrent use.
type Service struct{}

// New creates a suggestion service.
func New() *Service {
	return &Service{}
}

// Suggest corrects the query, collects matching history entries (returning
// users only, in history order) ahead of matching vocabulary entries,
// deduplicates preserving first-seen order, and caps the list at
// MaxSuggestions. Minimum-length gating is the caller's concern; this method
// applies none.
func (s *Service) Suggest(_ context.Context, rawQuery string, user *profile.Profile) []string {
	corrected := interpret.Correct(rawQuery)

	var pool []string
	if user != nil && user.IsReturning() {
		for _, term := range user.SearchHistory() {
			if strings.Contains(strings.ToLower(term), corrected) {
				pool = append(pool, term)
			}
		}
	}
	for _, entry := range vocabulary {
		if strings.Contains(entry, corrected) {
			pool = append(pool, entry)
		}
	}

	seen := make(map[string]struct{}, len(pool))
	suggestions := make([]string, 0, MaxSuggestions)
	for _, s := range pool {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		suggestions = append(suggestions, s)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}

	return suggestions
}
