package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/yash171102/shopquery/internal/config"
	"github.com/yash171102/shopquery/internal/db"
	dbRedis "github.com/yash171102/shopquery/internal/db/redis"
	logpkg "github.com/yash171102/shopquery/internal/logger"
	"github.com/yash171102/shopquery/internal/metrics"
	analyticsrepo "github.com/yash171102/shopquery/internal/repository/analytics"
	catalogrepo "github.com/yash171102/shopquery/internal/repository/catalog"
	chiTransport "github.com/yash171102/shopquery/internal/transport/chi"
	analyticsuc "github.com/yash171102/shopquery/internal/usecase/analytics"
	healthuc "github.com/yash171102/shopquery/internal/usecase/health"
	searchuc "github.com/yash171102/shopquery/internal/usecase/search"
	suggestuc "github.com/yash171102/shopquery/internal/usecase/suggest"
	"github.com/yash171102/shopquery/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting shopquery API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("analytics", cfg.AnalyticsEnabled()),
	)

	// Catalog is embedded and loaded once at startup.
	catalog, err := catalogrepo.New()
	if err != nil {
		logger.Fatal("Failed to load embedded catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded", zap.Int("items", catalog.Len()))

	// Analytics store is optional: no database address means analytics off.
	var store db.Store
	var analyticsStore *analyticsrepo.Store
	if cfg.AnalyticsEnabled() {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create analytics store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Analytics database not ready", zap.Error(err))
		}
		logger.Info("Connected to analytics database")

		analyticsStore = analyticsrepo.New(store, cfg.Analytics.KeyPrefix)
	}

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Create use case services
	var analyticsSvc *analyticsuc.Service
	if analyticsStore != nil {
		analyticsSvc = analyticsuc.New(analyticsStore).WithTopTerms(cfg.Analytics.TopTerms)
	} else {
		analyticsSvc = analyticsuc.New(nil)
	}

	searchSvc := searchuc.New(catalog).
		WithRecorder(analyticsSvc).
		WithSimulatedLatency(time.Duration(cfg.Search.SimulatedLatencyMS) * time.Millisecond)
	suggestSvc := suggestuc.New()

	var analyticsPinger healthuc.AnalyticsPinger
	if analyticsStore != nil {
		analyticsPinger = analyticsStore
	}
	healthSvc := healthuc.New(catalog, analyticsPinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, suggestSvc, analyticsSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
