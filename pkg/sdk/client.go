package shopquery

import (
	"context"
	"fmt"
	"time"

	"github.com/yash171102/shopquery/internal/db"
	dbRedis "github.com/yash171102/shopquery/internal/db/redis"
	"github.com/yash171102/shopquery/internal/domain/profile"
	"github.com/yash171102/shopquery/internal/domain/query"
	"github.com/yash171102/shopquery/internal/domain/search/result"
	logpkg "github.com/yash171102/shopquery/internal/logger"
	analyticsrepo "github.com/yash171102/shopquery/internal/repository/analytics"
	catalogrepo "github.com/yash171102/shopquery/internal/repository/catalog"
	analyticsuc "github.com/yash171102/shopquery/internal/usecase/analytics"
	healthuc "github.com/yash171102/shopquery/internal/usecase/health"
	searchuc "github.com/yash171102/shopquery/internal/usecase/search"
	suggestuc "github.com/yash171102/shopquery/internal/usecase/suggest"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the use cases.
type searchUseCase interface {
	Search(ctx context.Context, rawQuery string, user *profile.Profile, f query.Filters) []result.Result
}

type suggestUseCase interface {
	Suggest(ctx context.Context, rawQuery string, user *profile.Profile) []string
}

type analyticsUseCase interface {
	Report(ctx context.Context) (analyticsuc.Report, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the shopquery SDK entry point.
type Client struct {
	store        db.Store
	searchSvc    searchUseCase
	suggestSvc   suggestUseCase
	analyticsSvc analyticsUseCase
	healthSvc    healthUseCase
	obs          *observer
	logCtx       func(context.Context) context.Context
}

// New creates a shopquery Client with the embedded catalog loaded.
// The provided context is used for the Redis readiness check when
// WithRedis is set.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix: "shopquery:analytics:",
		topTerms:  analyticsuc.DefaultTopTerms,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	catalog, err := catalogrepo.New()
	if err != nil {
		return nil, fmt.Errorf("shopquery: load catalog: %w", err)
	}

	var store db.Store
	var analyticsStore *analyticsrepo.Store
	if len(cfg.addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("shopquery: create redis store: %w", err)
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("shopquery: database not ready: %w", err)
		}
		analyticsStore = analyticsrepo.New(store, cfg.keyPrefix)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}

	var analyticsSvc *analyticsuc.Service
	if analyticsStore != nil {
		analyticsSvc = analyticsuc.New(analyticsStore).WithTopTerms(cfg.topTerms)
	} else {
		analyticsSvc = analyticsuc.New(nil)
	}

	searchSvc := searchuc.New(catalog).
		WithRecorder(analyticsSvc).
		WithSimulatedLatency(cfg.simulatedLatency)

	var pinger healthuc.AnalyticsPinger
	if analyticsStore != nil {
		pinger = analyticsStore
	}

	logCtx := func(ctx context.Context) context.Context { return ctx }
	if cfg.logger != nil {
		l := cfg.logger
		logCtx = func(ctx context.Context) context.Context {
			return logpkg.ContextWithLogger(ctx, l)
		}
	}

	return &Client{
		store:        store,
		searchSvc:    searchSvc,
		suggestSvc:   suggestuc.New(),
		analyticsSvc: analyticsSvc,
		healthSvc:    healthuc.New(catalog, pinger),
		obs:          obs,
		logCtx:       logCtx,
	}, nil
}

// Close releases the Redis connection, if one was configured.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity. Without WithRedis it is a no-op.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if c.store == nil {
		return nil
	}
	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
