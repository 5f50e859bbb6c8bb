package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

// PaymentGateway charges a client supplied payment token.
// Failures are returned as *domain.GatewayError.
type PaymentGateway interface {
	Charge(ctx context.Context, req domain.ChargeRequest) (domain.Charge, error)
}

type EventPublisher interface {
	PublishOrderPaid(ctx context.Context, event domain.OrderPaid) error
}
