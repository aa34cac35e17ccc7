// Package auctions computes aggregate statistics over the running auctions
// page returned by the marketplace client.
package auctions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/donaldgifford/auction-monitor/internal/caronsale"
	"github.com/donaldgifford/auction-monitor/internal/metrics"
)

// ErrMalformedPage is returned when the listing is absent or lacks a total.
var ErrMalformedPage = errors.New("malformed auction page")

// Statistics summarizes one auction page. Averages divide by TotalAuctions,
// which is the page's reported total and may exceed the number of records
// summed. A zero total yields NaN or Inf averages rather than an error.
type Statistics struct {
	TotalAuctions           int     `json:"totalAuctions"`
	AuctionsBidSum          int     `json:"auctionsBidSum"`
	AuctionsBidAverage      float64 `json:"auctionsBidAverage"`
	AuctionsProgressSum     float64 `json:"auctionsProgressSum"`
	AuctionsProgressAverage float64 `json:"auctionsProgressAverage"`
}

// SumBids returns the total number of bids across items.
func SumBids(items []caronsale.Auction) int {
	sum := 0
	for i := range items {
		sum += items[i].NumBids
	}
	return sum
}

// SumProgress returns the summed ratio of highest bid to minimum ask,
// expressed in percent. A zero ask counts as 1. Ratios are accumulated
// first and scaled once; reordering changes the float rounding.
func SumProgress(items []caronsale.Auction) float64 {
	var sum float64
	for i := range items {
		bid := items[i].CurrentHighestBidValue
		if bid == 0 {
			continue
		}
		ask := items[i].MinimumRequiredAsk
		if ask == 0 {
			ask = 1
		}
		sum += bid / ask
	}
	return sum * 100
}

// Service derives Statistics from the marketplace.
type Service struct {
	client caronsale.AuctionClient
	log    *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// NewService creates a Service reading auctions from client.
func NewService(client caronsale.AuctionClient, opts ...Option) *Service {
	s := &Service{
		client: client,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Statistics fetches the current page and summarizes it. Client failures
// are returned as-is; they were already logged by the client.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	page, err := s.client.RunningAuctions(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := summarize(page)
	if err != nil {
		s.log.Error(fmt.Sprintf("error occurred computing statistics with message '%s'.", err))
		return nil, err
	}

	s.log.Info("calculating statistics",
		"total", stats.TotalAuctions,
		"fetched", len(page.Items),
	)

	metrics.AuctionsTotal.Set(float64(stats.TotalAuctions))
	metrics.AuctionsFetched.Set(float64(len(page.Items)))
	metrics.BidAverage.Set(stats.AuctionsBidAverage)
	metrics.ProgressAverage.Set(stats.AuctionsProgressAverage)

	return stats, nil
}

func summarize(page *caronsale.AuctionPage) (*Statistics, error) {
	if page == nil {
		return nil, fmt.Errorf("%w: page is absent", ErrMalformedPage)
	}
	if page.Total == nil {
		return nil, fmt.Errorf("%w: total is missing", ErrMalformedPage)
	}

	total := *page.Total
	bidSum := SumBids(page.Items)
	progressSum := SumProgress(page.Items)

	return &Statistics{
		TotalAuctions:           total,
		AuctionsBidSum:          bidSum,
		AuctionsBidAverage:      float64(bidSum) / float64(total),
		AuctionsProgressSum:     progressSum,
		AuctionsProgressAverage: progressSum / float64(total),
	}, nil
}
