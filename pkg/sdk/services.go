package shopquery

import (
	"context"
	"time"
)

// Search runs the full interpretation pipeline over the catalog: spelling
// correction, semantic extraction, matching, constraint filtering, and
// personalized ranking. A nil user or blank query is valid; an empty query
// returns an empty slice.
func (c *Client) Search(ctx context.Context, rawQuery string, user *User, filters Filters) []Product {
	start := time.Now()
	defer func() { c.obs.observe("search", start, nil) }()

	results := c.searchSvc.Search(c.logCtx(ctx), rawQuery, profileFromUser(user), filtersFromPublic(filters))
	products := make([]Product, 0, len(results))
	for _, r := range results {
		products = append(products, productFromResult(r))
	}
	return products
}

// Suggest returns autocomplete candidates for a partial query. History
// matches for returning users come first, then vocabulary matches; the
// list is deduplicated and capped.
func (c *Client) Suggest(ctx context.Context, rawQuery string, user *User) []string {
	start := time.Now()
	defer func() { c.obs.observe("suggest", start, nil) }()

	return c.suggestSvc.Suggest(c.logCtx(ctx), rawQuery, profileFromUser(user))
}

// Analytics returns the recorded search activity report. Without WithRedis
// it returns ErrAnalyticsDisabled.
func (c *Client) Analytics(ctx context.Context) (report AnalyticsReport, err error) {
	start := time.Now()
	defer func() { c.obs.observe("analytics", start, err) }()

	r, err := c.analyticsSvc.Report(c.logCtx(ctx))
	if err != nil {
		return AnalyticsReport{}, err
	}

	terms := make([]TermCount, 0, len(r.TopTerms))
	for _, t := range r.TopTerms {
		terms = append(terms, TermCount{Term: t.Term, Count: t.Count})
	}
	return AnalyticsReport{
		TotalSearches:       r.TotalSearches,
		AvgResultsPerSearch: r.AvgResultsPerSearch,
		ZeroResultsRate:     r.ZeroResultsRate,
		TopTerms:            terms,
	}, nil
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	out := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		out[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: out,
	}
}
