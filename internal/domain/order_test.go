package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func orderItem(slug, price string, unit currency.Unit, quantity int) domain.OrderItem {
	return domain.OrderItem{
		Item:     domain.Item{Slug: slug, Price: money(price, unit)},
		Quantity: quantity,
	}
}

func TestOrder_Total(t *testing.T) {
	tests := []struct {
		name      string
		items     []domain.OrderItem
		want      string
		wantError string
	}{
		{
			name: "empty order uses fallback currency",
			want: "0.00 EUR",
		},
		{
			name:  "single item",
			items: []domain.OrderItem{orderItem("shirt", "49.99", currency.USD, 1)},
			want:  "49.99 USD",
		},
		{
			name: "quantities are multiplied",
			items: []domain.OrderItem{
				orderItem("shirt", "49.99", currency.USD, 2),
				orderItem("hat", "10.00", currency.USD, 3),
			},
			want: "129.98 USD",
		},
		{
			name: "mixed currencies",
			items: []domain.OrderItem{
				orderItem("shirt", "49.99", currency.USD, 1),
				orderItem("hat", "10.00", currency.EUR, 1),
			},
			wantError: "item[hat]: currency mismatch: USD != EUR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := domain.Order{Items: tt.items}.Total(currency.EUR)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, total.String())
		})
	}
}

func TestOrder_FindItem(t *testing.T) {
	order := domain.Order{Items: []domain.OrderItem{orderItem("shirt", "1", currency.USD, 2)}}

	oi, ok := order.FindItem("shirt")
	require.True(t, ok)
	assert.Equal(t, 2, oi.Quantity)

	_, ok = order.FindItem("hat")
	assert.False(t, ok)
}

func TestItemPage(t *testing.T) {
	page := domain.ItemPage{Page: 1, PageSize: 2, Total: 3}
	assert.True(t, page.HasNext())
	assert.False(t, page.HasPrevious())

	page.Page = 2
	assert.False(t, page.HasNext())
	assert.True(t, page.HasPrevious())
}
