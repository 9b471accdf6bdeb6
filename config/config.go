package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Transport names
const (
	TransportPolling = "polling"
	TransportWebhook = "webhook"
)

// News sources
const (
	SourceInshorts  = "inshorts"
	SourceHeadlines = "headlines"
)

// Pick modes
const (
	PickFirst  = "first"
	PickRandom = "random"
)

// defaultSourceURLs maps a source to the page it is scraped from when NEWS_URL is not set.
// Sources without a default require NEWS_URL.
var defaultSourceURLs = map[string]string{
	SourceInshorts:  "https://inshorts.com/en/read",
	SourceHeadlines: "",
}

// Config holds all configuration for the news bot
type Config struct {
	Telegram TelegramConfig
	Scraper  ScraperConfig
	Logging  LoggingConfig
	Service  ServiceConfig
	Sentry   SentryConfig
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken       string
	WebhookBaseURL string
	WebhookPath    string
	WebhookSecret  string
}

// ScraperConfig holds news page scraping configuration
type ScraperConfig struct {
	Source    string
	URL       string
	Pick      string
	Timeout   time.Duration
	UserAgent string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
}

// SentryConfig holds error reporting configuration
type SentryConfig struct {
	DSN         string
	Environment string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config   *Config
	Telegram *TelegramConfig
	Scraper  *ScraperConfig
	Logging  *LoggingConfig
	Service  *ServiceConfig
	Sentry   *SentryConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Telegram: &cfg.Telegram,
		Scraper:  &cfg.Scraper,
		Logging:  &cfg.Logging,
		Service:  &cfg.Service,
		Sentry:   &cfg.Sentry,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("NEWS_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEWS_TIMEOUT: %w", err)
	}

	source := strings.ToLower(getEnv("NEWS_SOURCE", SourceInshorts))

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken:       getEnvFirst("", "TELEGRAM_BOT_TOKEN", "BOT_TOKEN"),
			WebhookBaseURL: getEnvFirst("", "WEBHOOK_BASE_URL", "RENDER_EXTERNAL_URL"),
			WebhookPath:    getEnv("WEBHOOK_PATH", "/webhook"),
			WebhookSecret:  getEnv("WEBHOOK_SECRET", ""),
		},
		Scraper: ScraperConfig{
			Source:    source,
			URL:       getEnv("NEWS_URL", defaultSourceURLs[source]),
			Pick:      strings.ToLower(getEnv("NEWS_PICK", PickFirst)),
			Timeout:   timeout,
			UserAgent: getEnv("NEWS_USER_AGENT", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "newsbot"),
			Port: getEnvFirst("8080", "PORT", "SERVICE_PORT"),
		},
		Sentry: SentryConfig{
			DSN:         getEnv("SENTRY_DSN", ""),
			Environment: getEnv("SENTRY_ENVIRONMENT", "production"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if c.Telegram.WebhookBaseURL != "" {
		u, err := url.Parse(c.Telegram.WebhookBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("WEBHOOK_BASE_URL must be an absolute http(s) URL, got %q", c.Telegram.WebhookBaseURL)
		}
	}

	if !strings.HasPrefix(c.Telegram.WebhookPath, "/") {
		return fmt.Errorf("WEBHOOK_PATH must start with /, got %q", c.Telegram.WebhookPath)
	}

	if _, ok := defaultSourceURLs[c.Scraper.Source]; !ok {
		return fmt.Errorf("unknown NEWS_SOURCE %q", c.Scraper.Source)
	}

	if c.Scraper.URL == "" {
		return fmt.Errorf("NEWS_URL is required")
	}

	if c.Scraper.Pick != PickFirst && c.Scraper.Pick != PickRandom {
		return fmt.Errorf("NEWS_PICK must be %q or %q, got %q", PickFirst, PickRandom, c.Scraper.Pick)
	}

	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("NEWS_TIMEOUT must be positive")
	}

	return nil
}

// Transport returns the inbound transport selected by the configuration
func (c *Config) Transport() string {
	return c.Telegram.Transport()
}

// Transport returns webhook when an external base URL is configured, polling otherwise
func (c *TelegramConfig) Transport() string {
	if c.WebhookBaseURL != "" {
		return TransportWebhook
	}
	return TransportPolling
}

// WebhookURL returns the URL registered with Telegram in webhook mode
func (c *TelegramConfig) WebhookURL() string {
	return strings.TrimRight(c.WebhookBaseURL, "/") + c.WebhookPath
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFirst returns the first non-empty variable among keys
func getEnvFirst(defaultValue string, keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return defaultValue
}
