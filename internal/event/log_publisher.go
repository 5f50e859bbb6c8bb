package event

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// NewLog returns a publisher that only logs events, used when no topic is configured.
func NewLog(logger *zap.Logger) port.EventPublisher {
	return &logPublisher{logger: logger.Named("events")}
}

type logPublisher struct {
	logger *zap.Logger
}

func (p *logPublisher) PublishOrderPaid(_ context.Context, event domain.OrderPaid) error {
	p.logger.Info("order paid",
		zap.Stringer("order_id", event.OrderID),
		zap.String("user_id", event.UserID),
		zap.Stringer("payment_id", event.PaymentID),
		zap.String("charge_id", event.ChargeID),
		zap.String("gateway", string(event.Gateway)),
		zap.Stringer("amount", event.Amount),
	)

	return nil
}
