package service_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCartFixture(t *testing.T) (*fakeOrderRepository, *service.Services) {
	t.Helper()

	catalogRepo := &fakeCatalogRepository{items: []domain.Item{newItem("blue-shirt", "49.99"), newItem("red-hat", "10.00")}}
	orders := &fakeOrderRepository{catalog: catalogRepo}

	catalog, err := service.NewCatalog(catalogRepo, nil, 2, zap.NewNop())
	require.NoError(t, err)

	return orders, &service.Services{
		Catalog: catalog,
		Cart:    service.NewCart(catalog, orders),
	}
}

func TestCartService(t *testing.T) {
	orders, svc := newCartFixture(t)
	ctx := t.Context()
	user := "user-1"

	// no open order yet
	err := svc.Cart.Remove(ctx, user, "blue-shirt")
	require.ErrorIs(t, err, domain.ErrNoActiveOrder)

	outcome, err := svc.Cart.Add(ctx, user, "blue-shirt")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemAdded, outcome)

	outcome, err = svc.Cart.Add(ctx, user, "blue-shirt")
	require.NoError(t, err)
	assert.Equal(t, domain.QuantityUpdated, outcome)

	outcome, err = svc.Cart.RemoveSingle(ctx, user, "blue-shirt")
	require.NoError(t, err)
	assert.Equal(t, domain.QuantityUpdated, outcome)

	outcome, err = svc.Cart.RemoveSingle(ctx, user, "blue-shirt")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemRemoved, outcome)

	_, err = svc.Cart.RemoveSingle(ctx, user, "blue-shirt")
	require.ErrorIs(t, err, domain.ErrNotInCart)

	err = svc.Cart.Remove(ctx, user, "red-hat")
	require.ErrorIs(t, err, domain.ErrNotInCart)

	order, err := orders.GetOpenOrder(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, order.Items)
}

func TestCartService_Validation(t *testing.T) {
	_, svc := newCartFixture(t)
	ctx := t.Context()

	_, err := svc.Cart.Add(ctx, "", "blue-shirt")
	require.EqualError(t, err, "userID is empty")

	_, err = svc.Cart.Add(ctx, "user-1", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Cart.Remove(ctx, "user-1", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Cart.RemoveSingle(ctx, "user-1", "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
