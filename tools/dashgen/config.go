package main

import "errors"

// KnownMetrics is the set of metric names exported by auction-monitor plus
// the recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// Marketplace API metrics.
	"auction_monitor_api_requests_total":                 true,
	"auction_monitor_api_request_duration_seconds_sum":   true,
	"auction_monitor_api_request_duration_seconds_count": true,

	// Statistics metrics.
	"auction_monitor_auctions_total":           true,
	"auction_monitor_auctions_fetched":         true,
	"auction_monitor_bid_average":              true,
	"auction_monitor_progress_average_percent": true,

	// Notification metrics.
	"auction_monitor_notification_duration_seconds_sum":   true,
	"auction_monitor_notification_duration_seconds_count": true,
	"auction_monitor_notification_failures_total":         true,

	// Run metrics.
	"auction_monitor_run_duration_seconds":           true,
	"auction_monitor_last_success_timestamp_seconds": true,

	// Recording rules.
	"auction_monitor:api_request_duration:mean":   true,
	"auction_monitor:api_rejections:last_run":     true,
	"auction_monitor:auctions_coverage:ratio":     true,
	"auction_monitor:notification_duration:mean": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
