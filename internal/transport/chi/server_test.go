package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	catalogrepo "github.com/yash171102/shopquery/internal/repository/catalog"
	analyticsuc "github.com/yash171102/shopquery/internal/usecase/analytics"
	healthuc "github.com/yash171102/shopquery/internal/usecase/health"
	searchuc "github.com/yash171102/shopquery/internal/usecase/search"
	suggestuc "github.com/yash171102/shopquery/internal/usecase/suggest"
)

// --- Helpers ---

type mockAnalyticsStore struct {
	searches    int64
	zeroResults int64
	resultSum   int64
	topTerms    []analyticsuc.TermCount
}

func (m *mockAnalyticsStore) RecordSearch(_ context.Context, _ string, _ int) error { return nil }

func (m *mockAnalyticsStore) Totals(_ context.Context) (int64, int64, int64, error) {
	return m.searches, m.zeroResults, m.resultSum, nil
}

func (m *mockAnalyticsStore) TopTerms(_ context.Context, _ int) ([]analyticsuc.TermCount, error) {
	return m.topTerms, nil
}

func newTestRouter(t *testing.T, analyticsStore analyticsuc.Store) chi.Router {
	t.Helper()

	catalog, err := catalogrepo.New()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	var analyticsSvc *analyticsuc.Service
	if analyticsStore != nil {
		analyticsSvc = analyticsuc.New(analyticsStore)
	} else {
		analyticsSvc = analyticsuc.New(nil)
	}

	server := NewServer(
		searchuc.New(catalog).WithRecorder(analyticsSvc),
		suggestuc.New(),
		analyticsSvc,
		healthuc.New(catalog, nil),
		zap.NewNop(),
	)

	r := chi.NewRouter()
	server.Register(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestSearchProducts_OK(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/search", SearchRequest{Query: "runni shoes"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total == 0 || len(resp.Items) != resp.Total {
		t.Fatalf("total = %d, items = %d", resp.Total, len(resp.Items))
	}
}

func TestSearchProducts_EmptyQuery(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/search", SearchRequest{Query: "   "})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 0 || resp.Items == nil {
		t.Fatalf("want empty non-null items, got %s", w.Body.String())
	}
}

func TestSearchProducts_BadBody(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != codeBadRequest {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestSearchProducts_PersonalizationThroughDTO(t *testing.T) {
	r := newTestRouter(t, nil)

	req := SearchRequest{
		Query: "shoes",
		User: &UserDTO{
			ID:          1,
			IsReturning: true,
			Preferences: PreferencesDTO{Brands: []string{"Nike"}},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/search", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatal("expected results")
	}
	if resp.Items[0].Brand != "Nike" || !resp.Items[0].IsPersonalized {
		t.Fatalf("first item = %+v, want personalized Nike", resp.Items[0])
	}
}

func TestSearchProducts_FiltersApplied(t *testing.T) {
	r := newTestRouter(t, nil)

	req := SearchRequest{
		Query:   "shoes",
		Filters: &FiltersDTO{Brands: []string{"Adidas"}},
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/search", req)

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, item := range resp.Items {
		if item.Brand != "Adidas" {
			t.Fatalf("filter leak: got brand %q", item.Brand)
		}
	}
	if resp.Total == 0 {
		t.Fatal("expected the Adidas shoe")
	}
}

func TestSuggestQueries_OK(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/suggest", SuggestRequest{Query: "lipstick"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp SuggestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected suggestions")
	}
}

func TestSuggestQueries_EmptyIsJSONArray(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/suggest", SuggestRequest{Query: "teapot"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"suggestions":[]`)) {
		t.Fatalf("want empty array, got %s", w.Body.String())
	}
}

func TestGetAnalytics_Disabled(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/analytics", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != codeAnalyticsDisabled {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestGetAnalytics_OK(t *testing.T) {
	store := &mockAnalyticsStore{
		searches:    10,
		zeroResults: 1,
		resultSum:   30,
		topTerms:    []analyticsuc.TermCount{{Term: "running shoes", Count: 4}},
	}
	r := newTestRouter(t, store)

	w := doJSON(t, r, http.MethodGet, "/api/v1/analytics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp AnalyticsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalSearches != 10 || resp.AvgResultsPerSearch != 3.0 || resp.ZeroResultsRate != 0.1 {
		t.Fatalf("report = %+v", resp)
	}
	if len(resp.TopSearchTerms) != 1 || resp.TopSearchTerms[0].Term != "running shoes" {
		t.Fatalf("terms = %v", resp.TopSearchTerms)
	}
}

func TestHealthCheck_OK(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Checks["catalog"] != "ok" {
		t.Fatalf("health = %+v", resp)
	}
}
