package coc

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"warlineup/lib/monitoring/global_metrics"
	"warlineup/lib/utils/logging"

	"golang.org/x/time/rate"
)

var logger = logging.NewLogger("COC_CLIENT")

// transport paces requests and records latency per endpoint.
type transport struct {
	rt http.RoundTripper
	rl *rate.Limiter
}

func newTransport(rt http.RoundTripper, rl *rate.Limiter) *transport {
	return &transport{rt: rt, rl: rl}
}

func (t *transport) RoundTrip(r *http.Request) (*http.Response, error) {
	endpointType := endpointFor(r.URL.Path)

	if t.rl.Limit() != rate.Inf {
		waitStart := time.Now()
		if err := t.rl.Wait(r.Context()); err != nil {
			return nil, err
		}
		global_metrics.CocRateLimiterWait.Observe(float64(time.Since(waitStart).Milliseconds()))
	}

	logger.Debug("SENDING_REQUEST", map[string]any{
		logging.METHOD:   r.Method,
		logging.ENDPOINT: r.URL.EscapedPath(),
	})

	startTime := time.Now()
	resp, err := t.rt.RoundTrip(r)
	duration := time.Since(startTime)

	status := "0"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	global_metrics.CocAPIRequest.WithLabelValues(endpointType, status).Observe(float64(duration.Milliseconds()))

	return resp, err
}

// endpointFor returns the resource segment of an API path,
// e.g. "players" for /v1/players/%23ABC.
func endpointFor(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return "other"
	}
	return parts[len(parts)-2]
}
