package view

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/auction-monitor/internal/auctions"
)

func sampleStats() *auctions.Statistics {
	return &auctions.Statistics{
		TotalAuctions:           10,
		AuctionsBidSum:          9,
		AuctionsBidAverage:      0.9,
		AuctionsProgressSum:     40,
		AuctionsProgressAverage: 4,
	}
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    any
		wantErr bool
	}{
		{name: "default is text", format: "", want: &Text{}},
		{name: "text", format: FormatText, want: &Text{}},
		{name: "json", format: FormatJSON, want: &JSON{}},
		{name: "unknown", format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := New(tt.format, &bytes.Buffer{}, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown output format")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestText_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats *auctions.Statistics
		want  string
	}{
		{
			name:  "documented example",
			stats: sampleStats(),
			want: "\n" +
				"Number of auctions: 10;\n" +
				"Average number of bids on an auction: 0.90;\n" +
				"Average percentage auction progress: 4.00%;\n" +
				"\n",
		},
		{
			name: "rounds to two decimals",
			stats: &auctions.Statistics{
				TotalAuctions:           3,
				AuctionsBidAverage:      2.0 / 3.0,
				AuctionsProgressAverage: 12.345678,
			},
			want: "\n" +
				"Number of auctions: 3;\n" +
				"Average number of bids on an auction: 0.67;\n" +
				"Average percentage auction progress: 12.35%;\n" +
				"\n",
		},
		{
			name: "zero total prints NaN",
			stats: &auctions.Statistics{
				AuctionsBidAverage:      math.NaN(),
				AuctionsProgressAverage: math.NaN(),
			},
			want: "\n" +
				"Number of auctions: 0;\n" +
				"Average number of bids on an auction: NaN;\n" +
				"Average percentage auction progress: NaN%;\n" +
				"\n",
		},
		{
			name: "zero total with bids prints Infinity",
			stats: &auctions.Statistics{
				AuctionsBidSum:          9,
				AuctionsBidAverage:      math.Inf(1),
				AuctionsProgressSum:     40,
				AuctionsProgressAverage: math.Inf(1),
			},
			want: "\n" +
				"Number of auctions: 0;\n" +
				"Average number of bids on an auction: Infinity;\n" +
				"Average percentage auction progress: Infinity%;\n" +
				"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			log, logs := captureLogger()
			require.NoError(t, NewText(&out, log).Render(tt.stats))
			assert.Equal(t, tt.want, out.String())
			assert.Empty(t, logs.String())
		})
	}
}

func TestText_Render_Nil(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	log, logs := captureLogger()

	err := NewText(&out, log).Render(nil)
	require.ErrorIs(t, err, ErrNoStatistics)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "error occurred rendering statistics with message 'no statistics to render'.")
}

func TestText_Render_WriteError(t *testing.T) {
	t.Parallel()

	log, logs := captureLogger()
	err := NewText(failingWriter{}, log).Render(sampleStats())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
	assert.Contains(t, logs.String(), "broken pipe")
}

func TestJSON_Render(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, NewJSON(&out, nil).Render(sampleStats()))

	assert.JSONEq(t, `{
		"totalAuctions": 10,
		"auctionsBidSum": 9,
		"auctionsBidAverage": 0.9,
		"auctionsProgressSum": 40,
		"auctionsProgressAverage": 4
	}`, out.String())
}

func TestJSON_Render_NonFinite(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := NewJSON(&out, nil).Render(&auctions.Statistics{
		AuctionsBidSum:          9,
		AuctionsBidAverage:      math.Inf(1),
		AuctionsProgressSum:     40,
		AuctionsProgressAverage: math.Inf(1),
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"totalAuctions": 0,
		"auctionsBidSum": 9,
		"auctionsBidAverage": null,
		"auctionsProgressSum": 40,
		"auctionsProgressAverage": null
	}`, out.String())
}

func TestJSON_Render_Nil(t *testing.T) {
	t.Parallel()

	log, logs := captureLogger()
	err := NewJSON(&bytes.Buffer{}, log).Render(nil)
	require.ErrorIs(t, err, ErrNoStatistics)
	assert.Contains(t, logs.String(), "error occurred rendering statistics")
}
