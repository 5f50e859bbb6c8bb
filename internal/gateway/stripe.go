package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/charge"
	"go.uber.org/zap"
)

type StripeConfig struct {
	SecretKey string
	// URL overrides the Stripe API base URL, used against stubs.
	URL string
	// MaxNetworkRetries is passed to the stripe backend, zero disables retries.
	MaxNetworkRetries int64
	HTTPClient        *http.Client
}

type stripeGateway struct {
	charges charge.Client
}

func NewStripe(cfg StripeConfig, logger *zap.Logger) (port.PaymentGateway, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is empty")
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient:        cfg.HTTPClient,
		LeveledLogger:     logger.Named("stripe").Sugar(),
		MaxNetworkRetries: stripe.Int64(cfg.MaxNetworkRetries),
	}
	if cfg.URL != "" {
		backendConfig.URL = stripe.String(cfg.URL)
	}

	return &stripeGateway{
		charges: charge.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
			Key: cfg.SecretKey,
		},
	}, nil
}

func (g *stripeGateway) Charge(ctx context.Context, req domain.ChargeRequest) (domain.Charge, error) {
	if req.Token == "" {
		return domain.Charge{}, &domain.GatewayError{
			Kind:    domain.GatewayInvalidRequest,
			Message: "payment token is empty",
		}
	}

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(strings.ToLower(req.Currency.String())),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	if err := params.SetSource(req.Token); err != nil {
		return domain.Charge{}, &domain.GatewayError{Kind: domain.GatewayInvalidRequest, Err: err}
	}

	ch, err := g.charges.New(params)
	if err != nil {
		return domain.Charge{}, classifyStripeError(err)
	}

	return domain.Charge{ID: ch.ID}, nil
}

func classifyStripeError(err error) *domain.GatewayError {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return domain.AsGatewayError(err)
	}

	gwErr := &domain.GatewayError{Message: stripeErr.Msg, Err: err}

	switch {
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests || stripeErr.Code == stripe.ErrorCodeRateLimit:
		gwErr.Kind = domain.GatewayRateLimited
	case stripeErr.HTTPStatusCode == http.StatusUnauthorized:
		gwErr.Kind = domain.GatewayAuthFailure
	case stripeErr.Type == stripe.ErrorTypeCard:
		gwErr.Kind = domain.GatewayCardDeclined
	case stripeErr.Type == stripe.ErrorTypeInvalidRequest, stripeErr.Type == stripe.ErrorTypeIdempotency:
		gwErr.Kind = domain.GatewayInvalidRequest
	default:
		gwErr.Kind = domain.GatewayGenericFailure
	}

	return gwErr
}
