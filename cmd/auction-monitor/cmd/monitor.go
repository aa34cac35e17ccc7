package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/donaldgifford/auction-monitor/internal/auctions"
	"github.com/donaldgifford/auction-monitor/internal/caronsale"
	"github.com/donaldgifford/auction-monitor/internal/config"
	"github.com/donaldgifford/auction-monitor/internal/metrics"
	"github.com/donaldgifford/auction-monitor/internal/notify"
	"github.com/donaldgifford/auction-monitor/internal/spinner"
	"github.com/donaldgifford/auction-monitor/internal/view"
	"github.com/donaldgifford/auction-monitor/pkg/logger"
)

// runMonitor performs one run: authenticate, fetch the running auctions,
// compute the statistics and present them. The first failure ends the run.
func runMonitor(ctx context.Context, v *viper.Viper, stdout, stderr io.Writer) (err error) {
	start := time.Now()

	if err := loadEnvFile(v.GetString(flagEnvFile), v.IsSet(flagEnvFile)); err != nil {
		return err
	}

	cfg, err := config.Parse(v.GetString(flagConfig), os.Getenv)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cfg, v)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	log := logger.NewWithWriter(stderr, cfg.Logging.Level, cfg.Logging.Format).
		With("run_id", uuid.NewString())
	log.Info("Auction Monitor started")

	defer func() {
		metrics.RunDuration.Set(time.Since(start).Seconds())
		if err == nil {
			metrics.LastSuccessTimestamp.SetToCurrentTime()
		}
		if path := cfg.Output.MetricsFile; path != "" {
			if werr := metrics.WriteTextfile(path); werr != nil {
				log.Error("writing metrics textfile failed", "path", path, "error", werr)
				err = errors.Join(err, werr)
			}
		}
	}()

	renderer, err := view.New(cfg.Output.Format, stdout, log)
	if err != nil {
		return err
	}

	limiter := caronsale.NewRateLimiter(
		cfg.Marketplace.RateLimit.PerSecond,
		cfg.Marketplace.RateLimit.Burst,
		cfg.Marketplace.RateLimit.MaxCalls,
	)
	client := caronsale.New(
		cfg.Marketplace.BaseURL,
		caronsale.Credentials{
			UserEmail: cfg.Marketplace.UserEmail,
			Password:  cfg.Marketplace.Password,
		},
		caronsale.WithHTTPClient(&http.Client{Timeout: cfg.Marketplace.Timeout}),
		caronsale.WithLogger(log),
		caronsale.WithProgress(newSpinner(cfg, stdout)),
		caronsale.WithRateLimiter(limiter),
	)

	svc := auctions.NewService(client, auctions.WithLogger(log))
	stats, err := svc.Statistics(ctx)
	if err != nil {
		return err
	}

	if err := renderer.Render(stats); err != nil {
		return err
	}

	if err := newNotifier(cfg, log).NotifyStatistics(ctx, stats); err != nil {
		log.Error("sending notification failed", "error", err)
		return err
	}

	log.Debug("run complete", "api_calls", limiter.Calls(), "duration", time.Since(start))
	return nil
}

// loadEnvFile exports the variables in path into the process environment
// without overriding those already set. A missing file is only an error
// when it was named explicitly.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return nil
	default:
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
}

// applyFlags overlays the flags (or AUCTION_MONITOR_* variables) that were
// set on top of the loaded configuration.
func applyFlags(cfg *config.Config, v *viper.Viper) {
	if v.IsSet(flagLogLevel) {
		cfg.Logging.Level = v.GetString(flagLogLevel)
	}
	if v.IsSet(flagLogFormat) {
		cfg.Logging.Format = v.GetString(flagLogFormat)
	}
	if v.IsSet(flagOutput) {
		cfg.Output.Format = v.GetString(flagOutput)
	}
	if v.IsSet(flagMetricsFile) {
		cfg.Output.MetricsFile = v.GetString(flagMetricsFile)
	}
	if webhook := v.GetString(flagDiscordWebhook); webhook != "" {
		cfg.Notifications.Discord.Enabled = true
		cfg.Notifications.Discord.WebhookURL = webhook
	}
	if v.GetBool(flagNoSpinner) {
		disabled := false
		cfg.Spinner.Enabled = &disabled
	}
}

func newSpinner(cfg *config.Config, w io.Writer) *spinner.Spinner {
	opts := []spinner.Option{spinner.WithInterval(cfg.Spinner.Interval)}
	if cfg.Spinner.Enabled != nil {
		opts = append(opts, spinner.WithEnabled(*cfg.Spinner.Enabled))
	}
	return spinner.New(w, opts...)
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	d := cfg.Notifications.Discord
	if !d.Enabled {
		return notify.NewNoOpNotifier(log)
	}
	return notify.NewDiscordNotifier(
		d.WebhookURL,
		notify.WithHTTPClient(&http.Client{Timeout: cfg.Marketplace.Timeout}),
	)
}
