// Package chi exposes the search, suggestion, and analytics use cases over
// HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yash171102/shopquery/internal/domain"
	analyticsuc "github.com/yash171102/shopquery/internal/usecase/analytics"
	healthuc "github.com/yash171102/shopquery/internal/usecase/health"
	searchuc "github.com/yash171102/shopquery/internal/usecase/search"
	suggestuc "github.com/yash171102/shopquery/internal/usecase/suggest"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers.
type Server struct {
	search        *searchuc.Service
	suggest       *suggestuc.Service
	analytics     *analyticsuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	analytics *analyticsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		suggest:   suggest,
		analytics: analytics,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrAnalyticsDisabled, http.StatusServiceUnavailable, codeAnalyticsDisabled),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/api/v1/search", s.SearchProducts)
	r.Post("/api/v1/suggest", s.SuggestQueries)
	r.Get("/api/v1/analytics", s.GetAnalytics)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchProducts handles POST /api/v1/search.
func (s *Server) SearchProducts(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user := profileFromDTO(req.User)
	filters := filtersFromDTO(req.Filters)

	results := s.search.Search(r.Context(), req.Query, user, filters)

	items := make([]ProductDTO, len(results))
	for i := range results {
		items[i] = resultToDTO(&results[i])
	}

	writeJSON(w, http.StatusOK, SearchResponse{Items: items, Total: len(items)})
}

// SuggestQueries handles POST /api/v1/suggest.
func (s *Server) SuggestQueries(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	suggestions := s.suggest.Suggest(r.Context(), req.Query, profileFromDTO(req.User))
	if suggestions == nil {
		suggestions = []string{}
	}

	writeJSON(w, http.StatusOK, SuggestResponse{Suggestions: suggestions})
}

// GetAnalytics handles GET /api/v1/analytics.
func (s *Server) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := s.analytics.Report(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reportToDTO(report))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrAnalyticsDisabled,
		domain.ErrCatalogInvalid,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
