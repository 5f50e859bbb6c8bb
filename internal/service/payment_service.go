package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type PaymentConfig struct {
	Gateways map[domain.PaymentOption]port.PaymentGateway
	// Currency is used for orders without items.
	Currency currency.Unit
	Timeout  time.Duration
}

type paymentService struct {
	orders    port.OrderRepository
	publisher port.EventPublisher
	cfg       PaymentConfig
	logger    *zap.Logger
}

func NewPayment(orders port.OrderRepository, publisher port.EventPublisher, cfg PaymentConfig, logger *zap.Logger) (port.PaymentService, error) {
	if len(cfg.Gateways) == 0 {
		return nil, fmt.Errorf("no payment gateways configured")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive")
	}

	return &paymentService{
		orders:    orders,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger.Named("payment"),
	}, nil
}

func (s *paymentService) Pay(ctx context.Context, userID string, option domain.PaymentOption, token string) (domain.Payment, error) {
	if userID == "" {
		return domain.Payment{}, fmt.Errorf("userID is empty")
	}

	gateway, ok := s.cfg.Gateways[option]
	if !ok {
		return domain.Payment{}, fmt.Errorf("payment option[%s]: %w", option, domain.ErrUnrecognizedPaymentOption)
	}

	order, payment, err := s.orders.PayOpenOrder(ctx, userID, func(ctx context.Context, order domain.Order) (domain.Payment, error) {
		if len(order.Items) == 0 {
			return domain.Payment{}, domain.ErrEmptyOrder
		}
		if order.BillingAddressID == nil {
			return domain.Payment{}, domain.ErrNoBillingAddress
		}
		if order.PaymentOption != option {
			return domain.Payment{}, fmt.Errorf("checkout[%s] payment[%s]: %w", order.PaymentOption, option, domain.ErrPaymentOptionMismatch)
		}

		total, err := order.Total(s.cfg.Currency)
		if err != nil {
			return domain.Payment{}, fmt.Errorf("order.Total: %w", err)
		}

		chargeCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()

		charge, err := gateway.Charge(chargeCtx, domain.ChargeRequest{
			Amount:         total.MinorUnits(),
			Currency:       total.Currency,
			Token:          token,
			Description:    fmt.Sprintf("order %s", order.ID),
			IdempotencyKey: order.ID.String() + ":" + token,
		})
		if err != nil {
			return domain.Payment{}, domain.AsGatewayError(err)
		}

		return domain.Payment{
			Gateway:  option,
			ChargeID: charge.ID,
			Amount:   total,
		}, nil
	})
	if err != nil {
		s.logFailure(userID, option, err)
		return domain.Payment{}, fmt.Errorf("orders.PayOpenOrder: %w", err)
	}

	s.logger.Info("order paid",
		zap.String("user_id", userID),
		zap.Stringer("order_id", order.ID),
		zap.Stringer("payment_id", payment.ID),
		zap.String("charge_id", payment.ChargeID),
		zap.String("gateway", string(option)),
		zap.Stringer("amount", payment.Amount),
	)

	if s.publisher != nil {
		err := s.publisher.PublishOrderPaid(ctx, domain.OrderPaid{
			OrderID:   order.ID,
			UserID:    userID,
			PaymentID: payment.ID,
			ChargeID:  payment.ChargeID,
			Gateway:   option,
			Amount:    payment.Amount,
			PaidAt:    payment.CreatedAt,
		})
		if err != nil {
			s.logger.Warn("publish order paid failed", zap.Stringer("order_id", order.ID), zap.Error(err))
		}
	}

	return payment, nil
}

func (s *paymentService) logFailure(userID string, option domain.PaymentOption, err error) {
	var recErr *domain.ReconciliationError
	if errors.As(err, &recErr) {
		s.logger.Error("charge captured but order not closed",
			zap.String("user_id", userID),
			zap.Stringer("order_id", recErr.OrderID),
			zap.String("charge_id", recErr.ChargeID),
			zap.String("gateway", string(option)),
			zap.Error(recErr.Err),
		)
		return
	}

	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) {
		s.logger.Warn("charge failed",
			zap.String("user_id", userID),
			zap.String("gateway", string(option)),
			zap.Stringer("kind", gwErr.Kind),
			zap.Error(gwErr),
		)
	}
}
