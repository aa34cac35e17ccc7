// Package metrics defines Prometheus metrics for auction-monitor. A run is
// short-lived, so metrics are exported by writing a node_exporter textfile
// rather than serving /metrics.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auction_monitor"

// Outcome label values for APIRequestsTotal.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Marketplace API metrics.
var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of marketplace API requests by operation and outcome.",
	}, []string{"operation", "outcome"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of marketplace API requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

// Statistics metrics.
var (
	AuctionsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "auctions_total",
		Help:      "Running auctions reported by the page total.",
	})

	AuctionsFetched = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "auctions_fetched",
		Help:      "Auction records present in the fetched page.",
	})

	BidAverage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bid_average",
		Help:      "Average number of bids per auction.",
	})

	ProgressAverage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "progress_average_percent",
		Help:      "Average highest bid as a percentage of minimum ask.",
	})
)

// Notification metrics.
var (
	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of statistics notification deliveries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)

// Run metrics.
var (
	RunDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of the last run in seconds.",
	})

	LastSuccessTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful run.",
	})
)

// WriteTextfile writes every registered metric to path in the text
// exposition format. The file is written atomically.
func WriteTextfile(path string) error {
	return WriteTextfileFrom(path, prometheus.DefaultGatherer)
}

// WriteTextfileFrom writes the metrics gathered from g to path.
func WriteTextfileFrom(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
