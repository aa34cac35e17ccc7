// Package config handles loading and validating the application configuration
// from an optional YAML file and the process environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Environment variables that carry the marketplace credentials.
const (
	EnvBaseURL   = "CARONSALE_URL"
	EnvUserEmail = "CARONSALE_USER_EMAIL"
	EnvPassword  = "CARONSALE_PASSWORD" //nolint:gosec // variable name, not a credential
)

// Config is the top-level application configuration.
type Config struct {
	Marketplace   MarketplaceConfig   `yaml:"marketplace"`
	Spinner       SpinnerConfig       `yaml:"spinner"`
	Output        OutputConfig        `yaml:"output"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// MarketplaceConfig defines CarOnSale API settings.
type MarketplaceConfig struct {
	BaseURL   string          `yaml:"base_url"`
	UserEmail string          `yaml:"user_email"`
	Password  string          `yaml:"password"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines client-side throttling. MaxCalls caps the
// requests a single run may make; 0 selects the default of 10 and a
// negative value disables the cap.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
	MaxCalls  int64   `yaml:"max_calls"`
}

// SpinnerConfig defines the in-flight progress indicator. A nil Enabled
// means "only when stdout is a terminal".
type SpinnerConfig struct {
	Enabled  *bool         `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// OutputConfig defines how statistics are presented.
type OutputConfig struct {
	Format      string `yaml:"format"`       // text, json
	MetricsFile string `yaml:"metrics_file"` // node_exporter textfile, optional
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, tint
}

// Load is Parse followed by Validate.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg, err := Parse(path, getenv)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Parse builds the configuration without validating it, so callers can
// overlay further settings first. When path is non-empty the YAML file is
// read with ${VAR} substitution from getenv. The CARONSALE_* variables then
// override the marketplace section and defaults are applied.
func Parse(path string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := os.Expand(string(data), getenv)
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	applyEnv(cfg, getenv)
	applyDefaults(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvBaseURL); v != "" {
		cfg.Marketplace.BaseURL = v
	}
	if v := getenv(EnvUserEmail); v != "" {
		cfg.Marketplace.UserEmail = v
	}
	if v := getenv(EnvPassword); v != "" {
		cfg.Marketplace.Password = v
	}
}

func applyDefaults(cfg *Config) {
	applyMarketplaceDefaults(&cfg.Marketplace)
	applySpinnerDefaults(&cfg.Spinner)
	applyOutputDefaults(&cfg.Output)
	applyLoggingDefaults(&cfg.Logging)
}

func applyMarketplaceDefaults(m *MarketplaceConfig) {
	if m.Timeout == 0 {
		m.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&m.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 2
	}
	if r.MaxCalls == 0 {
		r.MaxCalls = 10
	}
}

func applySpinnerDefaults(s *SpinnerConfig) {
	if s.Interval == 0 {
		s.Interval = 250 * time.Millisecond
	}
}

func applyOutputDefaults(o *OutputConfig) {
	if o.Format == "" {
		o.Format = "text"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// Validate reports every problem at once, wrapped in ErrInvalid.
func (cfg *Config) Validate() error {
	var errs []error

	switch u, err := url.Parse(cfg.Marketplace.BaseURL); {
	case cfg.Marketplace.BaseURL == "":
		errs = append(errs, fmt.Errorf("marketplace.base_url is required (or set %s)", EnvBaseURL))
	case err != nil:
		errs = append(errs, fmt.Errorf("marketplace.base_url is invalid: %w", err))
	case u.Scheme == "" || u.Host == "":
		errs = append(errs, fmt.Errorf("marketplace.base_url must include scheme and host (got %q)", cfg.Marketplace.BaseURL))
	}
	if cfg.Marketplace.UserEmail == "" {
		errs = append(errs, fmt.Errorf("marketplace.user_email is required (or set %s)", EnvUserEmail))
	}
	if cfg.Marketplace.Password == "" {
		errs = append(errs, fmt.Errorf("marketplace.password is required (or set %s)", EnvPassword))
	}
	if cfg.Marketplace.Timeout < 0 {
		errs = append(errs, fmt.Errorf("marketplace.timeout cannot be negative"))
	}
	if cfg.Marketplace.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("marketplace.rate_limit.per_second cannot be negative"))
	}
	if cfg.Marketplace.RateLimit.Burst < 0 {
		errs = append(errs, fmt.Errorf("marketplace.rate_limit.burst cannot be negative"))
	}
	if cfg.Spinner.Interval < 0 {
		errs = append(errs, fmt.Errorf("spinner.interval cannot be negative"))
	}

	switch cfg.Output.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("output.format must be one of: text, json (got %q)", cfg.Output.Format))
	}

	switch cfg.Logging.Format {
	case "text", "json", "tint":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json, tint (got %q)", cfg.Logging.Format))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
