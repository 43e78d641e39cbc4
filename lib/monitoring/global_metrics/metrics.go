package global_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CocAPIRequest records Clash of Clans API latency in milliseconds.
// status is the HTTP status code, or "0" when no response was received.
var CocAPIRequest = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "coc_api_request_duration_ms",
		Help:    "Clash of Clans API request latency in milliseconds",
		Buckets: []float64{10, 20, 50, 100, 150, 200, 250, 300, 500, 750, 1000, 1500, 2000, 5000},
	},
	[]string{"endpoint", "status"},
)

// CocRateLimiterWait records time spent waiting on the outbound pacer.
var CocRateLimiterWait = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "coc_rate_limiter_wait_ms",
		Help:    "Time spent waiting for the outbound request pacer in milliseconds",
		Buckets: []float64{0, 1, 5, 10, 50, 100, 250, 500, 1000, 2500},
	},
)

// RegisterGlobalMetrics registers the API client metrics on reg
func RegisterGlobalMetrics(reg prometheus.Registerer) {
	reg.MustRegister(CocAPIRequest)
	reg.MustRegister(CocRateLimiterWait)
}
