package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

type Config struct {
	Env      string
	HTTPAddr string

	DatabaseURL string

	// RedisURL is optional, the catalog cache is disabled without it.
	RedisURL        string
	CatalogCacheTTL time.Duration
	CatalogPageSize int

	Currency       currency.Unit
	PaymentTimeout time.Duration

	StripeSecretKey string
	StripeAPIURL    string

	PayPalClientID     string
	PayPalClientSecret string
	PayPalAPIURL       string

	// OrderEventsTopicARN is optional, order events are only logged without it.
	OrderEventsTopicARN string
	AWSRegion           string
}

// Load reads the environment, optionally seeded from a .env file in the
// working directory.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Env:                 get("APP_ENV", "development"),
		HTTPAddr:            get("HTTP_ADDR", ":8080"),
		DatabaseURL:         getenv("DATABASE_URL"),
		RedisURL:            getenv("REDIS_URL"),
		StripeSecretKey:     getenv("STRIPE_SECRET_KEY"),
		StripeAPIURL:        getenv("STRIPE_API_URL"),
		PayPalClientID:      getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret:  getenv("PAYPAL_CLIENT_SECRET"),
		PayPalAPIURL:        getenv("PAYPAL_API_URL"),
		OrderEventsTopicARN: getenv("ORDER_EVENTS_TOPIC_ARN"),
		AWSRegion:           get("AWS_REGION", "eu-west-2"),
	}

	var err error

	if cfg.CatalogCacheTTL, err = time.ParseDuration(get("CATALOG_CACHE_TTL", "5m")); err != nil {
		return Config{}, fmt.Errorf("CATALOG_CACHE_TTL: %w", err)
	}

	if cfg.PaymentTimeout, err = time.ParseDuration(get("PAYMENT_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("PAYMENT_TIMEOUT: %w", err)
	}
	if cfg.PaymentTimeout <= 0 {
		return Config{}, fmt.Errorf("PAYMENT_TIMEOUT must be positive")
	}

	if cfg.CatalogPageSize, err = strconv.Atoi(get("CATALOG_PAGE_SIZE", "2")); err != nil {
		return Config{}, fmt.Errorf("CATALOG_PAGE_SIZE: %w", err)
	}
	if cfg.CatalogPageSize < 1 {
		return Config{}, fmt.Errorf("CATALOG_PAGE_SIZE must be positive")
	}

	if cfg.Currency, err = currency.ParseISO(get("CURRENCY", "USD")); err != nil {
		return Config{}, fmt.Errorf("CURRENCY: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is empty")
	}

	if !cfg.StripeEnabled() && !cfg.PayPalEnabled() {
		return Config{}, fmt.Errorf("no payment gateway configured: set STRIPE_SECRET_KEY or PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET")
	}

	return cfg, nil
}

func (c Config) StripeEnabled() bool {
	return c.StripeSecretKey != ""
}

func (c Config) PayPalEnabled() bool {
	return c.PayPalClientID != "" && c.PayPalClientSecret != ""
}
