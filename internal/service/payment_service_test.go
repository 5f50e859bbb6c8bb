package service_test

import (
	"testing"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/currency"
)

type paymentFixture struct {
	orders    *fakeOrderRepository
	gateway   *fakeGateway
	publisher *fakePublisher
	svc       port.PaymentService
	logs      *observer.ObservedLogs
}

// newPaymentFixture prepares an open order with 2 x 49.99 USD and, when
// withAddress is set, a billing address.
func newPaymentFixture(t *testing.T, withItems, withAddress bool) paymentFixture {
	t.Helper()
	ctx := t.Context()

	catalogRepo := &fakeCatalogRepository{items: []domain.Item{newItem("blue-shirt", "49.99")}}
	orders := &fakeOrderRepository{catalog: catalogRepo}

	_, err := orders.AddItem(ctx, "user-1", catalogRepo.items[0].ID)
	require.NoError(t, err)
	_, err = orders.AddItem(ctx, "user-1", catalogRepo.items[0].ID)
	require.NoError(t, err)

	if !withItems {
		require.NoError(t, orders.RemoveItem(ctx, "user-1", "blue-shirt"))
	}
	if withAddress {
		_, err = orders.AttachBillingAddress(ctx, "user-1", domain.BillingAddress{StreetAddress: "1 Main St", Country: "US", Zip: "10001"}, domain.PaymentOptionStripe)
		require.NoError(t, err)
	}

	gateway := &fakeGateway{}
	publisher := &fakePublisher{}
	core, logs := observer.New(zapcore.DebugLevel)

	svc, err := service.NewPayment(orders, publisher, service.PaymentConfig{
		Gateways: map[domain.PaymentOption]port.PaymentGateway{domain.PaymentOptionStripe: gateway},
		Currency: currency.USD,
		Timeout:  time.Second,
	}, zap.New(core))
	require.NoError(t, err)

	return paymentFixture{
		orders:    orders,
		gateway:   gateway,
		publisher: publisher,
		svc:       svc,
		logs:      logs,
	}
}

func TestPaymentService_Pay(t *testing.T) {
	f := newPaymentFixture(t, true, true)
	ctx := t.Context()

	open, err := f.orders.GetOpenOrder(ctx, "user-1")
	require.NoError(t, err)

	payment, err := f.svc.Pay(ctx, "user-1", domain.PaymentOptionStripe, "tok_visa")
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentOptionStripe, payment.Gateway)
	assert.Equal(t, "99.98 USD", payment.Amount.String())
	assert.NotEmpty(t, payment.ChargeID)

	require.Len(t, f.gateway.requests, 1)
	req := f.gateway.requests[0]
	assert.Equal(t, int64(9998), req.Amount)
	assert.Equal(t, currency.USD, req.Currency)
	assert.Equal(t, "tok_visa", req.Token)
	assert.Equal(t, "order "+open.ID.String(), req.Description)
	assert.Equal(t, open.ID.String()+":tok_visa", req.IdempotencyKey)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, open.ID, f.publisher.events[0].OrderID)
	assert.Equal(t, payment.ID, f.publisher.events[0].PaymentID)

	_, err = f.orders.GetOpenOrder(ctx, "user-1")
	require.ErrorIs(t, err, domain.ErrNoActiveOrder)
}

func TestPaymentService_Pay_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		withItems   bool
		withAddress bool
		userID      string
		option      domain.PaymentOption
		wantErrIs   error
	}{
		{
			name:        "unknown option",
			withItems:   true,
			withAddress: true,
			userID:      "user-1",
			option:      domain.PaymentOptionPayPal,
			wantErrIs:   domain.ErrUnrecognizedPaymentOption,
		},
		{
			name:        "no open order",
			withItems:   true,
			withAddress: true,
			userID:      "user-2",
			option:      domain.PaymentOptionStripe,
			wantErrIs:   domain.ErrNoActiveOrder,
		},
		{
			name:        "empty order",
			withAddress: true,
			userID:      "user-1",
			option:      domain.PaymentOptionStripe,
			wantErrIs:   domain.ErrEmptyOrder,
		},
		{
			name:      "no billing address",
			withItems: true,
			userID:    "user-1",
			option:    domain.PaymentOptionStripe,
			wantErrIs: domain.ErrNoBillingAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture(t, tt.withItems, tt.withAddress)

			_, err := f.svc.Pay(t.Context(), tt.userID, tt.option, "tok_visa")
			require.ErrorIs(t, err, tt.wantErrIs)

			assert.Empty(t, f.gateway.requests)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestPaymentService_Pay_OptionDiffersFromCheckout(t *testing.T) {
	f := newPaymentFixture(t, true, true)
	ctx := t.Context()

	// checkout again choosing paypal, then try to pay with stripe
	_, err := f.orders.AttachBillingAddress(ctx, "user-1", domain.BillingAddress{StreetAddress: "1 Main St", Country: "US", Zip: "10001"}, domain.PaymentOptionPayPal)
	require.NoError(t, err)

	_, err = f.svc.Pay(ctx, "user-1", domain.PaymentOptionStripe, "tok_visa")
	require.ErrorIs(t, err, domain.ErrPaymentOptionMismatch)

	assert.Empty(t, f.gateway.requests)
	assert.Empty(t, f.publisher.events)

	order, err := f.orders.GetOpenOrder(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, order.Ordered)
}

func TestPaymentService_Pay_GatewayFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		delay    time.Duration
		wantKind domain.GatewayErrorKind
	}{
		{
			name:     "card declined",
			err:      &domain.GatewayError{Kind: domain.GatewayCardDeclined, Message: "Your card was declined."},
			wantKind: domain.GatewayCardDeclined,
		},
		{
			name:     "rate limited",
			err:      &domain.GatewayError{Kind: domain.GatewayRateLimited},
			wantKind: domain.GatewayRateLimited,
		},
		{
			name:     "unclassified error",
			err:      errBoom,
			wantKind: domain.GatewayUnclassified,
		},
		{
			name:     "timeout",
			delay:    5 * time.Second,
			wantKind: domain.GatewayNetworkFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture(t, true, true)
			f.gateway.err = tt.err
			f.gateway.delay = tt.delay

			_, err := f.svc.Pay(t.Context(), "user-1", domain.PaymentOptionStripe, "tok_visa")

			var gwErr *domain.GatewayError
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, tt.wantKind, gwErr.Kind)

			order, err := f.orders.GetOpenOrder(t.Context(), "user-1")
			require.NoError(t, err)
			assert.False(t, order.Ordered)
			assert.Empty(t, f.publisher.events)
			assert.Equal(t, 1, f.logs.FilterMessage("charge failed").Len())
		})
	}
}

func TestPaymentService_Pay_Reconciliation(t *testing.T) {
	f := newPaymentFixture(t, true, true)
	f.orders.commitErr = errBoom

	_, err := f.svc.Pay(t.Context(), "user-1", domain.PaymentOptionStripe, "tok_visa")

	var recErr *domain.ReconciliationError
	require.ErrorAs(t, err, &recErr)
	assert.NotEmpty(t, recErr.ChargeID)
	assert.Empty(t, f.publisher.events)

	entries := f.logs.FilterMessage("charge captured but order not closed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, recErr.ChargeID, entries[0].ContextMap()["charge_id"])
}

func TestPaymentService_Pay_PublishFailureIsLogged(t *testing.T) {
	f := newPaymentFixture(t, true, true)
	f.publisher.err = errBoom

	_, err := f.svc.Pay(t.Context(), "user-1", domain.PaymentOptionStripe, "tok_visa")
	require.NoError(t, err)

	assert.Equal(t, 1, f.logs.FilterMessage("publish order paid failed").Len())
}

func TestNewPayment_Validation(t *testing.T) {
	_, err := service.NewPayment(&fakeOrderRepository{}, nil, service.PaymentConfig{Timeout: time.Second}, zap.NewNop())
	require.EqualError(t, err, "no payment gateways configured")

	_, err = service.NewPayment(&fakeOrderRepository{}, nil, service.PaymentConfig{
		Gateways: map[domain.PaymentOption]port.PaymentGateway{domain.PaymentOptionStripe: &fakeGateway{}},
	}, zap.NewNop())
	require.EqualError(t, err, "timeout must be positive")
}

