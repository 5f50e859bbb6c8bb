package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/cache"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/event"
	"github.com/nikolayk812/storefront/internal/gateway"
	"github.com/nikolayk812/storefront/internal/handler"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/migrations"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	seedFile := flag.String("seed", "", "JSON file with catalog items to create before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger.New: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, *seedFile, log); err != nil {
		log.Fatal("storefront stopped", zap.Error(err))
	}
}

func run(cfg config.Config, seedFile string, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	if err := migrations.Apply(ctx, pool); err != nil {
		return fmt.Errorf("migrations.Apply: %w", err)
	}

	catalogRepo := repository.NewCatalog(pool)
	orderRepo := repository.NewOrder(pool)

	if seedFile != "" {
		if err := seed(ctx, catalogRepo, seedFile, log); err != nil {
			return err
		}
	}

	var catalogCache port.CatalogCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis.ParseURL: %w", err)
		}

		client := redis.NewClient(opts)
		defer func() { _ = client.Close() }()

		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis.Ping: %w", err)
		}

		catalogCache = cache.NewCatalog(client, cfg.CatalogCacheTTL)
	}

	gateways, err := newGateways(cfg, log)
	if err != nil {
		return err
	}

	publisher, err := newPublisher(ctx, cfg, log)
	if err != nil {
		return err
	}

	catalog, err := service.NewCatalog(catalogRepo, catalogCache, cfg.CatalogPageSize, log)
	if err != nil {
		return fmt.Errorf("service.NewCatalog: %w", err)
	}

	payment, err := service.NewPayment(orderRepo, publisher, service.PaymentConfig{
		Gateways: gateways,
		Currency: cfg.Currency,
		Timeout:  cfg.PaymentTimeout,
	}, log)
	if err != nil {
		return fmt.Errorf("service.NewPayment: %w", err)
	}

	svc := service.Services{
		Catalog:  catalog,
		Cart:     service.NewCart(catalog, orderRepo),
		Checkout: service.NewCheckout(orderRepo, log),
		Payment:  payment,
		Summary:  service.NewSummary(orderRepo),
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.New(svc, cfg.Currency, log).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("srv.ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}

func seed(ctx context.Context, items port.CatalogRepository, path string, log *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	created, err := service.SeedCatalog(ctx, items, f)
	if err != nil {
		return fmt.Errorf("service.SeedCatalog: %w", err)
	}

	log.Info("catalog seeded", zap.String("file", path), zap.Int("created", created))

	return nil
}

func newGateways(cfg config.Config, log *zap.Logger) (map[domain.PaymentOption]port.PaymentGateway, error) {
	gateways := make(map[domain.PaymentOption]port.PaymentGateway)

	if cfg.StripeEnabled() {
		gw, err := gateway.NewStripe(gateway.StripeConfig{
			SecretKey:         cfg.StripeSecretKey,
			URL:               cfg.StripeAPIURL,
			MaxNetworkRetries: 1,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("gateway.NewStripe: %w", err)
		}
		gateways[domain.PaymentOptionStripe] = gw
	}

	if cfg.PayPalEnabled() {
		gw, err := gateway.NewPayPal(gateway.PayPalConfig{
			ClientID:     cfg.PayPalClientID,
			ClientSecret: cfg.PayPalClientSecret,
			URL:          cfg.PayPalAPIURL,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("gateway.NewPayPal: %w", err)
		}
		gateways[domain.PaymentOptionPayPal] = gw
	}

	return gateways, nil
}

func newPublisher(ctx context.Context, cfg config.Config, log *zap.Logger) (port.EventPublisher, error) {
	if cfg.OrderEventsTopicARN == "" {
		return event.NewLog(log), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("awsconfig.LoadDefaultConfig: %w", err)
	}

	publisher, err := event.NewSNS(sns.NewFromConfig(awsCfg), cfg.OrderEventsTopicARN)
	if err != nil {
		return nil, fmt.Errorf("event.NewSNS: %w", err)
	}

	return publisher, nil
}
