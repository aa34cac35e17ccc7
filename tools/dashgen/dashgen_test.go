package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/auction-monitor/tools/dashgen/dashboards"
	"github.com/donaldgifford/auction-monitor/tools/dashgen/rules"
	"github.com/donaldgifford/auction-monitor/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "auction-monitor-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Auction Monitor", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 4)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 10, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "auction-monitor-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "auction-monitor-recording", group.Name)

	expectedRecords := []string{
		"auction_monitor:api_request_duration:mean",
		"auction_monitor:api_rejections:last_run",
		"auction_monitor:auctions_coverage:ratio",
		"auction_monitor:notification_duration:mean",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "%s missing from KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "auction-monitor-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "auction-monitor-alerts", group.Name)

	expectedAlerts := []string{
		"AuctionMonitorMetricsMissing",
		"AuctionMonitorStale",
		"AuctionMonitorAPIRejections",
		"AuctionMonitorLowCoverage",
		"AuctionMonitorNotificationFailures",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{name: "known metric", expr: `auction_monitor_bid_average`},
		{name: "function over known metric", expr: `time() - auction_monitor_last_success_timestamp_seconds`},
		{name: "unknown metric", expr: `http_requests_total`, wantErr: "unknown metric http_requests_total"},
		{name: "syntax error", expr: `sum(auction_monitor_bid_average`, wantErr: "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := validate.Expr(tt.expr, KnownMetrics)
			if tt.wantErr == "" {
				assert.True(t, res.Ok(), "errors: %v", res.Errors)
				return
			}
			require.False(t, res.Ok())
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir
	require.NoError(t, run(cfg, false))

	for _, p := range []string{dashboardPath, recordingPath, alertsPath} {
		data, err := os.ReadFile(filepath.Join(dir, p))
		require.NoError(t, err, "missing %s", p)
		assert.NotEmpty(t, data)
	}

	alerts, err := os.ReadFile(filepath.Join(dir, alertsPath))
	require.NoError(t, err)
	assert.Contains(t, string(alerts), generatedHeader)
	assert.Contains(t, string(alerts), "AuctionMonitorStale")
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir
	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
