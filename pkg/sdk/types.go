package shopquery

import (
	"github.com/yash171102/shopquery/internal/domain/profile"
	"github.com/yash171102/shopquery/internal/domain/query"
	"github.com/yash171102/shopquery/internal/domain/search/result"
)

// Preferences describes what a returning user favors. Brand and category
// matching against the catalog is exact (case-sensitive).
type Preferences struct {
	Brands     []string
	Categories []string
	Colors     []string
	PriceMin   float64
	PriceMax   float64
}

// User is the caller-supplied user context. Personalization and
// history-based suggestions activate only when IsReturning is true.
type User struct {
	ID            int
	Email         string
	FirstName     string
	LastName      string
	IsReturning   bool
	Preferences   Preferences
	SearchHistory []string
}

// PriceRange constrains results to Min <= price <= Max (inclusive).
type PriceRange struct {
	Min *float64
	Max *float64
}

// Filters narrows search results. Empty slices and nil pointers mean
// unconstrained dimensions. Brands and Categories match exactly; Colors,
// Sizes, and MinRating are accepted but not enforced.
type Filters struct {
	Brands     []string
	Categories []string
	Colors     []string
	Sizes      []string
	MinRating  *float64
	PriceRange *PriceRange
}

// Product is a single search hit with its ranking flags resolved.
type Product struct {
	ID                int
	Name              string
	Brand             string
	Category          string
	Price             float64
	Currency          string
	Image             string
	Rating            float64
	ReviewCount       int
	IsPersonalized    bool
	IsMerchandised    bool
	MerchandisingType string
	Attributes        map[string]any
}

// TermCount is a search term with its occurrence count.
type TermCount struct {
	Term  string
	Count int64
}

// AnalyticsReport summarizes recorded search activity.
type AnalyticsReport struct {
	TotalSearches       int64
	AvgResultsPerSearch float64
	ZeroResultsRate     float64
	TopTerms            []TermCount
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "degraded"
	Checks map[string]string // component -> "ok"/"error"
}

func profileFromUser(u *User) *profile.Profile {
	if u == nil {
		return nil
	}
	prefs := profile.NewPreferences(
		u.Preferences.Brands,
		u.Preferences.Categories,
		u.Preferences.Colors,
		u.Preferences.PriceMin,
		u.Preferences.PriceMax,
	)
	p := profile.New(u.ID, u.Email, u.FirstName, u.LastName, u.IsReturning, prefs, u.SearchHistory)
	return &p
}

func filtersFromPublic(f Filters) query.Filters {
	var pr *query.PriceRange
	if f.PriceRange != nil {
		r := query.NewPriceRange(f.PriceRange.Min, f.PriceRange.Max)
		pr = &r
	}
	return query.NewFilters(f.Brands, f.Categories, f.Colors, f.Sizes, f.MinRating, pr)
}

func productFromResult(r result.Result) Product {
	item := r.Item()
	return Product{
		ID:                item.ID(),
		Name:              item.Name(),
		Brand:             item.Brand(),
		Category:          item.Category(),
		Price:             item.Price(),
		Currency:          item.Currency(),
		Image:             item.Image(),
		Rating:            item.Rating(),
		ReviewCount:       item.ReviewCount(),
		IsPersonalized:    r.Personalized(),
		IsMerchandised:    r.Merchandised(),
		MerchandisingType: string(r.MerchandisingKind()),
		Attributes:        item.Attributes(),
	}
}
