package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

// ChargeFunc captures money for a locked open order and returns the payment to record.
type ChargeFunc func(ctx context.Context, order domain.Order) (domain.Payment, error)

type OrderRepository interface {
	GetOpenOrder(ctx context.Context, userID string) (domain.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)

	AddItem(ctx context.Context, userID string, itemID uuid.UUID) (domain.CartOutcome, error)
	RemoveItem(ctx context.Context, userID string, slug string) error
	RemoveSingleItem(ctx context.Context, userID string, slug string) (domain.CartOutcome, error)

	AttachBillingAddress(ctx context.Context, userID string, address domain.BillingAddress, option domain.PaymentOption) (domain.BillingAddress, error)
	GetBillingAddress(ctx context.Context, addressID uuid.UUID) (domain.BillingAddress, error)

	PayOpenOrder(ctx context.Context, userID string, charge ChargeFunc) (domain.Order, domain.Payment, error)
	GetPayment(ctx context.Context, paymentID uuid.UUID) (domain.Payment, error)
}
