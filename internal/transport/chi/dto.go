package chi

import (
	"github.com/yash171102/shopquery/internal/domain/profile"
	"github.com/yash171102/shopquery/internal/domain/query"
	"github.com/yash171102/shopquery/internal/domain/search/result"
	"github.com/yash171102/shopquery/internal/usecase/analytics"
)

// Error codes returned by the API.
const (
	codeBadRequest        = "bad_request"
	codeUnauthorized      = "unauthorized"
	codeAnalyticsDisabled = "analytics_disabled"
	codeInternalError     = "internal_error"
)

// ErrorResponse is the API error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PriceRangeDTO is an inclusive price range; absent boundaries mean
// 0 (min) and unbounded (max).
type PriceRangeDTO struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// PreferencesDTO carries a user's declared preferences.
type PreferencesDTO struct {
	Brands     []string       `json:"brands,omitempty"`
	Categories []string       `json:"categories,omitempty"`
	Colors     []string       `json:"colors,omitempty"`
	PriceRange *PriceRangeDTO `json:"price_range,omitempty"`
}

// UserDTO is the caller-supplied user context.
type UserDTO struct {
	ID            int            `json:"id"`
	Email         string         `json:"email,omitempty"`
	FirstName     string         `json:"first_name,omitempty"`
	LastName      string         `json:"last_name,omitempty"`
	IsReturning   bool           `json:"is_returning"`
	Preferences   PreferencesDTO `json:"preferences"`
	SearchHistory []string       `json:"search_history,omitempty"`
}

// FiltersDTO carries caller-supplied result constraints.
type FiltersDTO struct {
	Brands     []string       `json:"brands,omitempty"`
	Categories []string       `json:"categories,omitempty"`
	Colors     []string       `json:"colors,omitempty"`
	Sizes      []string       `json:"sizes,omitempty"`
	Rating     *float64       `json:"rating,omitempty"`
	PriceRange *PriceRangeDTO `json:"price_range,omitempty"`
}

// SearchRequest is the POST /api/v1/search body.
type SearchRequest struct {
	Query   string      `json:"query"`
	User    *UserDTO    `json:"user,omitempty"`
	Filters *FiltersDTO `json:"filters,omitempty"`
}

// ProductDTO is a search hit with resolved flags.
type ProductDTO struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Brand             string         `json:"brand"`
	Category          string         `json:"category"`
	Price             float64        `json:"price"`
	Currency          string         `json:"currency"`
	Image             string         `json:"image"`
	Rating            float64        `json:"rating"`
	ReviewCount       int            `json:"review_count"`
	IsPersonalized    bool           `json:"is_personalized"`
	IsMerchandised    bool           `json:"is_merchandised"`
	MerchandisingType string         `json:"merchandising_type,omitempty"`
	Attributes        map[string]any `json:"attributes,omitempty"`
}

// SearchResponse is the POST /api/v1/search reply.
type SearchResponse struct {
	Items []ProductDTO `json:"items"`
	Total int          `json:"total"`
}

// SuggestRequest is the POST /api/v1/suggest body.
type SuggestRequest struct {
	Query string   `json:"query"`
	User  *UserDTO `json:"user,omitempty"`
}

// SuggestResponse is the POST /api/v1/suggest reply.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// TermCountDTO is a search term with its occurrence count.
type TermCountDTO struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

// AnalyticsResponse is the GET /api/v1/analytics reply.
type AnalyticsResponse struct {
	TotalSearches       int64          `json:"total_searches"`
	AvgResultsPerSearch float64        `json:"avg_results_per_search"`
	ZeroResultsRate     float64        `json:"zero_results_rate"`
	TopSearchTerms      []TermCountDTO `json:"top_search_terms"`
}

// HealthResponse is the GET /health reply.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func profileFromDTO(u *UserDTO) *profile.Profile {
	if u == nil {
		return nil
	}

	var priceMin, priceMax float64
	if pr := u.Preferences.PriceRange; pr != nil {
		if pr.Min != nil {
			priceMin = *pr.Min
		}
		if pr.Max != nil {
			priceMax = *pr.Max
		}
	}

	prefs := profile.NewPreferences(
		u.Preferences.Brands, u.Preferences.Categories, u.Preferences.Colors,
		priceMin, priceMax,
	)
	p := profile.New(u.ID, u.Email, u.FirstName, u.LastName, u.IsReturning, prefs, u.SearchHistory)
	return &p
}

func filtersFromDTO(f *FiltersDTO) query.Filters {
	if f == nil {
		return query.Filters{}
	}

	var priceRange *query.PriceRange
	if f.PriceRange != nil {
		pr := query.NewPriceRange(f.PriceRange.Min, f.PriceRange.Max)
		priceRange = &pr
	}

	return query.NewFilters(f.Brands, f.Categories, f.Colors, f.Sizes, f.Rating, priceRange)
}

func resultToDTO(r *result.Result) ProductDTO {
	item := r.Item()
	return ProductDTO{
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

func reportToDTO(rep analytics.Report) AnalyticsResponse {
	terms := make([]TermCountDTO, len(rep.TopTerms))
	for i, t := range rep.TopTerms {
		terms[i] = TermCountDTO{Term: t.Term, Count: t.Count}
	}
	return AnalyticsResponse{
		TotalSearches:       rep.TotalSearches,
		AvgResultsPerSearch: rep.AvgResultsPerSearch,
		ZeroResultsRate:     rep.ZeroResultsRate,
		TopSearchTerms:      terms,
	}
}
