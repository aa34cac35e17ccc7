package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AuctionsStat shows the running auctions reported by the marketplace.
func AuctionsStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Running Auctions").
		Description("Page total reported by the marketplace").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`auction_monitor_auctions_total`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea).
		TextMode(common.BigValueTextModeValue)
}

// CoverageStat shows the share of reported auctions present in the page.
// Averages divide by the total, so low coverage understates them.
func CoverageStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Page Coverage").
		Description("Fetched records as a percentage of the reported total").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`auction_monitor:auctions_coverage:ratio * 100`, "", "A")).
		Unit("percent").
		Thresholds(ThresholdsRedYellowGreen(50, 90)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// BidAverage shows the average number of bids per auction over time.
func BidAverage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Average Bids").
		Description("Average number of bids on an auction").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`auction_monitor_bid_average`, "bids", "A")).
		Decimals(2).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ProgressAverage shows the average auction progress over time.
func ProgressAverage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Average Progress").
		Description("Average highest bid as a percentage of the minimum ask").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`auction_monitor_progress_average_percent`, "progress", "A")).
		Unit("percent").
		Decimals(2).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Thresholds(ThresholdsRedYellowGreen(50, 100)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
