package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type CatalogService interface {
	List(ctx context.Context, page int) (domain.ItemPage, error)
	Get(ctx context.Context, slug string) (domain.Item, error)
}

type CartService interface {
	Add(ctx context.Context, userID, slug string) (domain.CartOutcome, error)
	Remove(ctx context.Context, userID, slug string) error
	RemoveSingle(ctx context.Context, userID, slug string) (domain.CartOutcome, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, userID string, form domain.CheckoutForm) (domain.PaymentOption, error)
}

type PaymentService interface {
	Pay(ctx context.Context, userID string, option domain.PaymentOption, token string) (domain.Payment, error)
}

type SummaryService interface {
	Summary(ctx context.Context, userID string) (domain.Order, error)
}
