package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, APIRequestsTotal)
	assert.NotNil(t, APIRequestDuration)
	assert.NotNil(t, AuctionsTotal)
	assert.NotNil(t, AuctionsFetched)
	assert.NotNil(t, BidAverage)
	assert.NotNil(t, ProgressAverage)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, RunDuration)
	assert.NotNil(t, LastSuccessTimestamp)
}

func TestWriteTextfileFrom(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "textfile_probe",
		Help:      "Probe gauge.",
	})
	reg.MustRegister(g)
	g.Set(42)

	path := filepath.Join(t.TempDir(), "auction_monitor.prom")
	require.NoError(t, WriteTextfileFrom(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "auction_monitor_textfile_probe 42")
}

func TestWriteTextfileFrom_BadPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "dir", "out.prom")
	err := WriteTextfileFrom(path, prometheus.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing metrics textfile")
}
