package shopquery

import (
	"context"
	"errors"
	"testing"

	"github.com/yash171102/shopquery/internal/domain"
	"github.com/yash171102/shopquery/internal/domain/catalog"
	"github.com/yash171102/shopquery/internal/domain/profile"
	"github.com/yash171102/shopquery/internal/domain/query"
	"github.com/yash171102/shopquery/internal/domain/search/result"
	analyticsuc "github.com/yash171102/shopquery/internal/usecase/analytics"
	healthuc "github.com/yash171102/shopquery/internal/usecase/health"
)

// --- Mocks ---

type mockSearch struct {
	results   []result.Result
	lastQuery string
	lastUser  *profile.Profile
}

func (m *mockSearch) Search(
	_ context.Context, rawQuery string, user *profile.Profile, _ query.Filters,
) []result.Result {
	m.lastQuery = rawQuery
	m.lastUser = user
	return m.results
}

type mockSuggest struct {
	suggestions []string
}

func (m *mockSuggest) Suggest(_ context.Context, _ string, _ *profile.Profile) []string {
	return m.suggestions
}

type mockAnalytics struct {
	report analyticsuc.Report
	err    error
}

func (m *mockAnalytics) Report(_ context.Context) (analyticsuc.Report, error) {
	return m.report, m.err
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report { return m.report }

func testClient(search searchUseCase, suggest suggestUseCase, analytics analyticsUseCase, health healthUseCase) *Client {
	return &Client{
		searchSvc:    search,
		suggestSvc:   suggest,
		analyticsSvc: analytics,
		healthSvc:    health,
		logCtx:       func(ctx context.Context) context.Context { return ctx },
	}
}

func fixtureResult() result.Result {
	item := catalog.Reconstruct(1, "Nike Air Max 270", "Nike", "Running Shoes",
		150, "USD", "/placeholder.svg", 4.5, 1250, true, false, catalog.MerchNone,
		map[string]any{"color": "Black"})
	return result.FromCatalog(item)
}

// --- Tests ---

func TestSearch_ConvertsResults(t *testing.T) {
	search := &mockSearch{results: []result.Result{fixtureResult()}}
	client := testClient(search, nil, nil, nil)

	products := client.Search(context.Background(), "nike", nil, Filters{})
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	p := products[0]
	if p.ID != 1 || p.Name != "Nike Air Max 270" || p.Brand != "Nike" {
		t.Fatalf("product = %+v", p)
	}
	if !p.IsPersonalized || p.IsMerchandised {
		t.Fatalf("flags = %v/%v", p.IsPersonalized, p.IsMerchandised)
	}
	if p.Attributes["color"] != "Black" {
		t.Fatalf("attributes = %v", p.Attributes)
	}
}

func TestSearch_ConvertsUser(t *testing.T) {
	search := &mockSearch{}
	client := testClient(search, nil, nil, nil)

	user := &User{
		ID:            7,
		IsReturning:   true,
		Preferences:   Preferences{Brands: []string{"Nike"}},
		SearchHistory: []string{"running shoes"},
	}
	client.Search(context.Background(), "shoes", user, Filters{})

	got := search.lastUser
	if got == nil || got.ID() != 7 || !got.IsReturning() {
		t.Fatalf("profile = %+v", got)
	}
	if !got.Preferences().FavorsBrand("Nike") {
		t.Fatal("brand preference lost in conversion")
	}
	if len(got.SearchHistory()) != 1 || got.SearchHistory()[0] != "running shoes" {
		t.Fatalf("history = %v", got.SearchHistory())
	}
}

func TestSearch_NilUser(t *testing.T) {
	search := &mockSearch{}
	client := testClient(search, nil, nil, nil)

	client.Search(context.Background(), "shoes", nil, Filters{})
	if search.lastUser != nil {
		t.Fatal("nil user must stay nil")
	}
}

func TestSearch_EmptyResultIsNonNil(t *testing.T) {
	client := testClient(&mockSearch{}, nil, nil, nil)

	products := client.Search(context.Background(), "teapot", nil, Filters{})
	if products == nil || len(products) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", products)
	}
}

func TestSuggest_Delegates(t *testing.T) {
	suggest := &mockSuggest{suggestions: []string{"running shoes"}}
	client := testClient(nil, suggest, nil, nil)

	got := client.Suggest(context.Background(), "run", nil)
	if len(got) != 1 || got[0] != "running shoes" {
		t.Fatalf("got %v", got)
	}
}

func TestAnalytics_ConvertsReport(t *testing.T) {
	analytics := &mockAnalytics{
		report: analyticsuc.Report{
			TotalSearches:       10,
			AvgResultsPerSearch: 3,
			ZeroResultsRate:     0.1,
			TopTerms:            []analyticsuc.TermCount{{Term: "shoes", Count: 4}},
		},
	}
	client := testClient(nil, nil, analytics, nil)

	report, err := client.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if report.TotalSearches != 10 || report.ZeroResultsRate != 0.1 {
		t.Fatalf("report = %+v", report)
	}
	if len(report.TopTerms) != 1 || report.TopTerms[0].Term != "shoes" {
		t.Fatalf("terms = %v", report.TopTerms)
	}
}

func TestAnalytics_DisabledSentinel(t *testing.T) {
	analytics := &mockAnalytics{err: domain.ErrAnalyticsDisabled}
	client := testClient(nil, nil, analytics, nil)

	_, err := client.Analytics(context.Background())
	if !errors.Is(err, ErrAnalyticsDisabled) {
		t.Fatalf("err = %v, want ErrAnalyticsDisabled", err)
	}
}

func TestHealth_ConvertsReport(t *testing.T) {
	health := &mockHealth{
		report: healthuc.Report{
			Status: healthuc.Healthy,
			Checks: map[string]healthuc.CheckResult{"catalog": healthuc.CheckOK},
		},
	}
	client := testClient(nil, nil, nil, health)

	got := client.Health(context.Background())
	if got.Status != "ok" || got.Checks["catalog"] != "ok" {
		t.Fatalf("health = %+v", got)
	}
}

func TestPing_NoStoreIsNoop(t *testing.T) {
	client := testClient(&mockSearch{}, nil, nil, nil)

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
