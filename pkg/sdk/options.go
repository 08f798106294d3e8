package shopquery

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string

	keyPrefix string
	topTerms  int

	simulatedLatency time.Duration

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithRedis connects the client to a Redis instance and enables the
// analytics report. Without it, searches still work and Analytics returns
// ErrAnalyticsDisabled.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithAnalyticsKeyPrefix sets the Redis key prefix for analytics counters.
// Default: "shopquery:analytics:".
func WithAnalyticsKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithTopTerms sets how many top search terms the analytics report includes.
// Default: 5.
func WithTopTerms(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.topTerms = n
	})
}

// WithSimulatedLatency delays each search by d, mimicking a remote backend.
// Default: no delay.
func WithSimulatedLatency(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.simulatedLatency = d
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers client metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
