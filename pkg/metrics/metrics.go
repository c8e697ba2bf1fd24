package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Feed fetch outcomes.
const (
	OutcomeFresh  = "fresh"
	OutcomeCached = "cached"
	OutcomeStale  = "stale"
	OutcomeEmpty  = "empty"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comunidad_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "comunidad_http_request_duration_seconds",
		Help:    "Histogram of latencies for HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	feedFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comunidad_feed_fetch_total",
		Help: "Feed reads by outcome (fresh download, cached, stale fallback, empty).",
	}, []string{"feed", "outcome"})

	feedFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "comunidad_feed_fetch_duration_seconds",
		Help:    "Latency of spreadsheet downloads.",
		Buckets: prometheus.DefBuckets,
	}, []string{"feed"})

	scriptureLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comunidad_scripture_lookups_total",
		Help: "Scripture passage lookups by result.",
	}, []string{"result"})
)

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveFeed counts a feed read outcome.
func ObserveFeed(feed, outcome string) {
	feedFetchTotal.WithLabelValues(feed, outcome).Inc()
}

// ObserveFeedDownload records the latency of a spreadsheet download.
func ObserveFeedDownload(feed string, start time.Time) {
	feedFetchDuration.WithLabelValues(feed).Observe(time.Since(start).Seconds())
}

// ObserveScripture counts a passage lookup result.
func ObserveScripture(result string) {
	scriptureLookupsTotal.WithLabelValues(result).Inc()
}

// Handler exposes the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
