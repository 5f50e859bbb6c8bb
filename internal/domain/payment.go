package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
)

type PaymentOption string

const (
	PaymentOptionStripe PaymentOption = "stripe"
	PaymentOptionPayPal PaymentOption = "paypal"
)

func ParsePaymentOption(s string) (PaymentOption, error) {
	switch o := PaymentOption(s); o {
	case PaymentOptionStripe, PaymentOptionPayPal:
		return o, nil
	default:
		return "", fmt.Errorf("payment option[%s]: %w", s, ErrUnrecognizedPaymentOption)
	}
}

type Payment struct {
	ID       uuid.UUID
	UserID   string
	Gateway  PaymentOption
	ChargeID string
	Amount   Money

	CreatedAt time.Time
}

// ChargeRequest is what a payment gateway needs to capture money.
// Amount is in minor units of Currency.
type ChargeRequest struct {
	Amount         int64
	Currency       currency.Unit
	Token          string
	Description    string
	IdempotencyKey string
}

type Charge struct {
	ID string
}

// OrderPaid is emitted once an order has been closed by a successful payment.
type OrderPaid struct {
	OrderID   uuid.UUID
	UserID    string
	PaymentID uuid.UUID
	ChargeID  string
	Gateway   PaymentOption
	Amount    Money
	PaidAt    time.Time
}
