// Package view renders auction statistics for the terminal.
package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/donaldgifford/auction-monitor/internal/auctions"
)

// ErrNoStatistics is returned when asked to render a nil record.
var ErrNoStatistics = errors.New("no statistics to render")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes a statistics record somewhere visible.
type Renderer interface {
	Render(stats *auctions.Statistics) error
}

// New returns the renderer for format, writing to w. Unknown formats are an
// error.
func New(format string, w io.Writer, log *slog.Logger) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &Text{w: w, log: log}, nil
	case FormatJSON:
		return &JSON{w: w, log: log}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatText, FormatJSON)
	}
}

// Text renders the four-line human summary framed by blank lines. Averages
// are fixed to two decimals; non-finite values print as NaN, Infinity or
// -Infinity.
type Text struct {
	w   io.Writer
	log *slog.Logger
}

// NewText creates a Text renderer.
func NewText(w io.Writer, log *slog.Logger) *Text {
	return &Text{w: w, log: log}
}

// Render implements Renderer.
func (t *Text) Render(stats *auctions.Statistics) error {
	if stats == nil {
		return fail(t.log, ErrNoStatistics)
	}

	lw := &lineWriter{w: t.w}
	lw.writef("\n")
	lw.writef("Number of auctions: %d;\n", stats.TotalAuctions)
	lw.writef("Average number of bids on an auction: %s;\n", fixed2(stats.AuctionsBidAverage))
	lw.writef("Average percentage auction progress: %s%%;\n", fixed2(stats.AuctionsProgressAverage))
	lw.writef("\n")
	if lw.err != nil {
		return fail(t.log, lw.err)
	}
	return nil
}

// JSON renders the record as indented JSON. Non-finite averages, which a
// zero total produces, are emitted as null.
type JSON struct {
	w   io.Writer
	log *slog.Logger
}

// NewJSON creates a JSON renderer.
func NewJSON(w io.Writer, log *slog.Logger) *JSON {
	return &JSON{w: w, log: log}
}

type jsonStatistics struct {
	TotalAuctions           int      `json:"totalAuctions"`
	AuctionsBidSum          int      `json:"auctionsBidSum"`
	AuctionsBidAverage      *float64 `json:"auctionsBidAverage"`
	AuctionsProgressSum     float64  `json:"auctionsProgressSum"`
	AuctionsProgressAverage *float64 `json:"auctionsProgressAverage"`
}

// Render implements Renderer.
func (j *JSON) Render(stats *auctions.Statistics) error {
	if stats == nil {
		return fail(j.log, ErrNoStatistics)
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonStatistics{
		TotalAuctions:           stats.TotalAuctions,
		AuctionsBidSum:          stats.AuctionsBidSum,
		AuctionsBidAverage:      finite(stats.AuctionsBidAverage),
		AuctionsProgressSum:     stats.AuctionsProgressSum,
		AuctionsProgressAverage: finite(stats.AuctionsProgressAverage),
	}); err != nil {
		return fail(j.log, fmt.Errorf("encoding statistics: %w", err))
	}
	return nil
}

func fixed2(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func fail(log *slog.Logger, err error) error {
	if log != nil {
		log.Error(fmt.Sprintf("error occurred rendering statistics with message '%s'.", err))
	}
	return err
}

// lineWriter remembers the first write error and skips later writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) writef(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}
