// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/auction-monitor/tools/dashgen/panels"
)

// BuildOverview constructs the Auction Monitor dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Auction Monitor").
		Uid("auction-monitor-overview").
		Tags([]string{"auction-monitor", "caronsale"}).
		Refresh("5m").
		Time("now-7d", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Runs").
		WithPanel(panels.LastSuccessStat()).
		WithPanel(panels.RunDurationStat()).
		WithPanel(panels.AuctionsStat()).
		WithPanel(panels.CoverageStat()))

	b.WithRow(dashboard.NewRowBuilder("Auctions").
		WithPanel(panels.BidAverage()).
		WithPanel(panels.ProgressAverage()))

	b.WithRow(dashboard.NewRowBuilder("Marketplace API").
		WithPanel(panels.APIRequests()).
		WithPanel(panels.APILatency()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationFailures()).
		WithPanel(panels.NotificationLatency()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
