package rules

// RecordingRules returns a PrometheusRule CR with the derived series used
// by the dashboard and the alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "auction-monitor-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "auction-monitor-recording",
					Rules: []Rule{
						{
							Record: "auction_monitor:api_request_duration:mean",
							Expr: `sum by (operation) (auction_monitor_api_request_duration_seconds_sum)` +
								` / sum by (operation) (auction_monitor_api_request_duration_seconds_count)`,
						},
						{
							Record: "auction_monitor:api_rejections:last_run",
							Expr:   `sum(auction_monitor_api_requests_total{outcome!="success"})`,
						},
						{
							Record: "auction_monitor:auctions_coverage:ratio",
							Expr:   `auction_monitor_auctions_fetched / auction_monitor_auctions_total`,
						},
						{
							Record: "auction_monitor:notification_duration:mean",
							Expr: `auction_monitor_notification_duration_seconds_sum` +
								` / auction_monitor_notification_duration_seconds_count`,
						},
					},
				},
			},
		},
	}
}
