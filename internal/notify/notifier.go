// Package notify defines the notification interface and implementations
// for delivering a statistics summary outside the terminal.
package notify

import (
	"context"

	"github.com/donaldgifford/auction-monitor/internal/auctions"
)

// Notifier defines the interface for sending a statistics summary.
type Notifier interface {
	NotifyStatistics(ctx context.Context, stats *auctions.Statistics) error
}
