package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type OrderItem struct {
	ID       uuid.UUID
	UserID   string
	Item     Item
	Quantity int
	Ordered  bool

	CreatedAt time.Time
}

func (oi OrderItem) TotalPrice() Money {
	return oi.Item.Price.Mul(oi.Quantity)
}

// Order with Ordered == false is the user's open cart.
type Order struct {
	ID               uuid.UUID
	UserID           string
	Items            []OrderItem
	Ordered          bool
	BillingAddressID *uuid.UUID
	PaymentOption    PaymentOption // chosen at checkout
	PaymentID        *uuid.UUID

	StartDate   time.Time
	OrderedDate *time.Time
}

func (o Order) FindItem(slug string) (OrderItem, bool) {
	for _, oi := range o.Items {
		if oi.Item.Slug == slug {
			return oi, true
		}
	}

	return OrderItem{}, false
}

// Total sums item prices. An empty order totals zero in the fallback currency.
func (o Order) Total(fallback currency.Unit) (Money, error) {
	if len(o.Items) == 0 {
		return Money{Amount: decimal.Zero, Currency: fallback}, nil
	}

	total := Money{Amount: decimal.Zero, Currency: o.Items[0].Item.Price.Currency}

	for _, oi := range o.Items {
		var err error

		total, err = total.Add(oi.TotalPrice())
		if err != nil {
			return Money{}, fmt.Errorf("item[%s]: %w", oi.Item.Slug, err)
		}
	}

	return total, nil
}
