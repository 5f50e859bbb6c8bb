package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func (m Money) Mul(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency: m.Currency,
	}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s != %s", m.Currency, other.Currency)
	}

	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// MinorUnits returns the amount in the smallest unit of its currency,
// e.g. 49.99 USD is 4999 and 500 JPY is 500.
func (m Money) MinorUnits() int64 {
	scale, _ := currency.Standard.Rounding(m.Currency)

	return m.Amount.Shift(int32(scale)).Round(0).IntPart()
}

func (m Money) String() string {
	scale, _ := currency.Standard.Rounding(m.Currency)

	return m.Amount.StringFixed(int32(scale)) + " " + m.Currency.String()
}
