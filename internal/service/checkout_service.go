package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type checkoutService struct {
	orders   port.OrderRepository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewCheckout(orders port.OrderRepository, logger *zap.Logger) port.CheckoutService {
	return &checkoutService{
		orders:   orders,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Named("checkout"),
	}
}

// Checkout attaches a billing address to the user's open order and returns
// the payment option to continue with.
func (s *checkoutService) Checkout(ctx context.Context, userID string, form domain.CheckoutForm) (domain.PaymentOption, error) {
	if userID == "" {
		return "", fmt.Errorf("userID is empty")
	}

	if _, err := s.orders.GetOpenOrder(ctx, userID); err != nil {
		return "", fmt.Errorf("orders.GetOpenOrder: %w", err)
	}

	if err := s.validate.StructCtx(ctx, form); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidCheckoutInput, err)
	}

	option, err := domain.ParsePaymentOption(form.PaymentOption)
	if err != nil {
		return "", err
	}

	address, err := s.orders.AttachBillingAddress(ctx, userID, domain.BillingAddress{
		StreetAddress:    form.StreetAddress,
		ApartmentAddress: form.ApartmentAddress,
		Country:          form.Country,
		Zip:              form.Zip,
	}, option)
	if err != nil {
		return "", fmt.Errorf("orders.AttachBillingAddress: %w", err)
	}

	s.logger.Debug("billing address attached",
		zap.String("user_id", userID),
		zap.Stringer("billing_address_id", address.ID),
		zap.String("payment_option", string(option)),
	)

	return option, nil
}
