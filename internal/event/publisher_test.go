package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/currency"
)

type fakeSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}

	return &sns.PublishOutput{MessageId: aws.String(uuid.NewString())}, nil
}

func orderPaid() domain.OrderPaid {
	return domain.OrderPaid{
		OrderID:   uuid.New(),
		UserID:    "user-1",
		PaymentID: uuid.New(),
		ChargeID:  "ch_1",
		Gateway:   domain.PaymentOptionStripe,
		Amount:    domain.Money{Amount: decimal.RequireFromString("49.99"), Currency: currency.USD},
		PaidAt:    time.Now().UTC(),
	}
}

func TestSNSPublisher_PublishOrderPaid(t *testing.T) {
	client := &fakeSNS{}
	publisher, err := NewSNS(client, "arn:aws:sns:eu-west-2:000000000000:order-events")
	require.NoError(t, err)

	event := orderPaid()
	require.NoError(t, publisher.PublishOrderPaid(t.Context(), event))

	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	assert.Equal(t, "arn:aws:sns:eu-west-2:000000000000:order-events", aws.ToString(input.TopicArn))
	assert.Equal(t, "order.paid", aws.ToString(input.MessageAttributes["event_type"].StringValue))

	var msg orderPaidMessage
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(input.Message)), &msg))
	assert.Equal(t, event.OrderID, msg.OrderID)
	assert.Equal(t, event.PaymentID, msg.PaymentID)
	assert.Equal(t, "ch_1", msg.ChargeID)
	assert.Equal(t, "stripe", msg.Gateway)
	assert.Equal(t, "49.99", msg.Amount)
	assert.Equal(t, "USD", msg.Currency)
}

func TestSNSPublisher_PublishError(t *testing.T) {
	client := &fakeSNS{err: errors.New("throttled")}
	publisher, err := NewSNS(client, "arn:aws:sns:eu-west-2:000000000000:order-events")
	require.NoError(t, err)

	err = publisher.PublishOrderPaid(t.Context(), orderPaid())
	require.EqualError(t, err, "sns.Publish: throttled")
}

func TestNewSNS_Validation(t *testing.T) {
	_, err := NewSNS(nil, "arn")
	require.EqualError(t, err, "sns client is nil")

	_, err = NewSNS(&fakeSNS{}, "")
	require.EqualError(t, err, "topicARN is empty")
}

func TestLogPublisher_PublishOrderPaid(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	publisher := NewLog(zap.New(core))

	event := orderPaid()
	require.NoError(t, publisher.PublishOrderPaid(t.Context(), event))

	entries := logs.FilterMessage("order paid").All()
	require.Len(t, entries, 1)
	assert.Equal(t, event.OrderID.String(), entries[0].ContextMap()["order_id"])
	assert.Equal(t, "49.99 USD", entries[0].ContextMap()["amount"])
}
