package rules

// AlertRules returns a PrometheusRule CR with the auction-monitor alerts.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "auction-monitor-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "auction-monitor-alerts",
					Rules: []Rule{
						{
							Alert: "AuctionMonitorMetricsMissing",
							Expr:  `absent(auction_monitor_run_duration_seconds)`,
							For:   "30m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Auction Monitor metrics are missing",
								"description": "No auction-monitor textfile has been collected for 30 minutes.",
							},
						},
						{
							Alert: "AuctionMonitorStale",
							Expr:  `time() - auction_monitor_last_success_timestamp_seconds > 7200`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Auction Monitor has not succeeded for 2 hours",
								"description": "The last successful run printed statistics more than two hours ago.",
							},
						},
						{
							Alert: "AuctionMonitorAPIRejections",
							Expr:  `auction_monitor:api_rejections:last_run > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Marketplace requests failed",
								"description": "The last run had rejected or failed CarOnSale API requests.",
							},
						},
						{
							Alert: "AuctionMonitorLowCoverage",
							Expr:  `auction_monitor:auctions_coverage:ratio < 0.5`,
							For:   "1h",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "Averages cover less than half of the running auctions",
								"description": "The first page holds under 50% of the reported total, so averages are understated.",
							},
						},
						{
							Alert: "AuctionMonitorNotificationFailures",
							Expr:  `auction_monitor_notification_failures_total > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failed",
								"description": "The last run could not post its summary to the Discord webhook.",
							},
						},
					},
				},
			},
		},
	}
}
