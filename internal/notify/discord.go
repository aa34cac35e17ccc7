package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/donaldgifford/auction-monitor/internal/auctions"
	"github.com/donaldgifford/auction-monitor/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // progress average 100%+
	colorYellow = 0xF1C40F // 50-99%
	colorOrange = 0xE67E22 // below 50%, or undefined
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
	nowFunc    func() time.Time
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// WithNowFunc overrides the embed timestamp source for testing.
func WithNowFunc(f func() time.Time) DiscordOption {
	return func(d *DiscordNotifier) {
		d.nowFunc = f
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NotifyStatistics posts the summary as a single Discord embed.
func (d *DiscordNotifier) NotifyStatistics(ctx context.Context, stats *auctions.Statistics) error {
	if stats == nil {
		return errors.New("no statistics to notify")
	}

	start := time.Now()
	err := d.post(ctx, discordWebhookPayload{
		Embeds: []discordEmbed{d.buildEmbed(stats)},
	})
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
	}
	return err
}

func (d *DiscordNotifier) buildEmbed(stats *auctions.Statistics) discordEmbed {
	return discordEmbed{
		Title:     "Running auctions",
		Color:     progressColor(stats.AuctionsProgressAverage),
		Timestamp: d.nowFunc().UTC().Format(time.RFC3339),
		Fields: []discordEmbedField{
			{Name: "Auctions", Value: fmt.Sprintf("%d", stats.TotalAuctions), Inline: true},
			{Name: "Avg bids", Value: fmt.Sprintf("%.2f", stats.AuctionsBidAverage), Inline: true},
			{Name: "Avg progress", Value: fmt.Sprintf("%.2f%%", stats.AuctionsProgressAverage), Inline: true},
		},
	}
}

// progressColor maps the average progress to an embed colour. NaN falls
// through every comparison to orange.
func progressColor(avg float64) int {
	switch {
	case avg >= 100:
		return colorGreen
	case avg >= 50:
		return colorYellow
	default:
		return colorOrange
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
