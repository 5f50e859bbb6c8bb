package config_test

import (
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func envOf(m map[string]string) func(string) string {
	return func(key string) string {
		return m[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(envOf(map[string]string{
		"DATABASE_URL":      "postgres://localhost/storefront",
		"STRIPE_SECRET_KEY": "sk_test_123",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 2, cfg.CatalogPageSize)
	assert.Equal(t, currency.USD, cfg.Currency)
	assert.Equal(t, 10*time.Second, cfg.PaymentTimeout)
	assert.True(t, cfg.StripeEnabled())
	assert.False(t, cfg.PayPalEnabled())
}

func TestFromEnv_Errors(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{
			"DATABASE_URL":      "postgres://localhost/storefront",
			"STRIPE_SECRET_KEY": "sk_test_123",
		}
	}

	tests := []struct {
		name      string
		modify    func(m map[string]string)
		wantError string
	}{
		{
			name:      "missing database url",
			modify:    func(m map[string]string) { delete(m, "DATABASE_URL") },
			wantError: "DATABASE_URL is empty",
		},
		{
			name: "no gateway",
			modify: func(m map[string]string) {
				delete(m, "STRIPE_SECRET_KEY")
				m["PAYPAL_CLIENT_ID"] = "only-id"
			},
			wantError: "no payment gateway configured: set STRIPE_SECRET_KEY or PAYPAL_CLIENT_ID and PAYPAL_CLIENT_SECRET",
		},
		{
			name:      "zero page size",
			modify:    func(m map[string]string) { m["CATALOG_PAGE_SIZE"] = "0" },
			wantError: "CATALOG_PAGE_SIZE must be positive",
		},
		{
			name:      "negative timeout",
			modify:    func(m map[string]string) { m["PAYMENT_TIMEOUT"] = "-1s" },
			wantError: "PAYMENT_TIMEOUT must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base()
			tt.modify(m)

			_, err := config.FromEnv(envOf(m))
			require.EqualError(t, err, tt.wantError)
		})
	}

	t.Run("bad currency", func(t *testing.T) {
		m := base()
		m["CURRENCY"] = "ZZZZ"

		_, err := config.FromEnv(envOf(m))
		require.ErrorContains(t, err, "CURRENCY")
	})
}

func TestFromEnv_PayPalOnly(t *testing.T) {
	cfg, err := config.FromEnv(envOf(map[string]string{
		"DATABASE_URL":         "postgres://localhost/storefront",
		"PAYPAL_CLIENT_ID":     "id",
		"PAYPAL_CLIENT_SECRET": "secret",
		"CURRENCY":             "EUR",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.PayPalEnabled())
	assert.False(t, cfg.StripeEnabled())
	assert.Equal(t, currency.EUR, cfg.Currency)
}
