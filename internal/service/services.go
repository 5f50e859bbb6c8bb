package service

import "github.com/nikolayk812/storefront/internal/port"

// Services bundles the use cases served over HTTP.
type Services struct {
	Catalog  port.CatalogService
	Cart     port.CartService
	Checkout port.CheckoutService
	Payment  port.PaymentService
	Summary  port.SummaryService
}
