package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastSuccessStat shows the time since the last successful run.
func LastSuccessStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Successful Run").
		Description("Time since a run last printed statistics").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - auction_monitor_last_success_timestamp_seconds`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(StaleAfter/2, StaleAfter)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RunDurationStat shows the wall-clock duration of the last run.
func RunDurationStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Run Duration").
		Description("Wall-clock duration of the last run").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`auction_monitor_run_duration_seconds`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(10, 30)).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// APIRequests shows marketplace requests of the last run by operation and
// outcome.
func APIRequests() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace Requests").
		Description("Requests made by the last run, by operation and outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (operation, outcome) (auction_monitor_api_requests_total)`,
			"{{operation}} {{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("last", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// APILatency shows the mean marketplace request latency per operation.
func APILatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace Latency").
		Description("Mean request duration per operation in the last run").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`auction_monitor:api_request_duration:mean`, "{{operation}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
