package notify

import (
	"context"
	"log/slog"

	"github.com/donaldgifford/auction-monitor/internal/auctions"
)

// NoOpNotifier implements Notifier by logging discarded summaries. It is
// used when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards summaries with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyStatistics logs and discards the summary.
func (n *NoOpNotifier) NotifyStatistics(_ context.Context, stats *auctions.Statistics) error {
	if stats == nil {
		return nil
	}
	n.log.Debug("notification discarded (no backend configured)",
		"auctions", stats.TotalAuctions,
	)
	return nil
}
