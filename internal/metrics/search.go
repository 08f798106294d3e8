package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchesTotal counts executed searches.
	SearchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shopquery",
		Name:      "searches_total",
		Help:      "Total number of executed searches",
	})

	// ZeroResultSearches counts searches that returned nothing.
	ZeroResultSearches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shopquery",
		Name:      "zero_result_searches_total",
		Help:      "Total number of searches with an empty result list",
	})
)

// RegisterSearchMetrics registers search domain metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(ZeroResultSearches)
}
