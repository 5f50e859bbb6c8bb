package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

const orderPaidEventType = "order.paid"

// snsAPI is the subset of *sns.Client used for publishing.
type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsPublisher struct {
	client   snsAPI
	topicARN string
}

func NewSNS(client snsAPI, topicARN string) (port.EventPublisher, error) {
	if client == nil {
		return nil, fmt.Errorf("sns client is nil")
	}
	if topicARN == "" {
		return nil, fmt.Errorf("topicARN is empty")
	}

	return &snsPublisher{
		client:   client,
		topicARN: topicARN,
	}, nil
}

type orderPaidMessage struct {
	EventType string    `json:"event_type"`
	OrderID   uuid.UUID `json:"order_id"`
	UserID    string    `json:"user_id"`
	PaymentID uuid.UUID `json:"payment_id"`
	ChargeID  string    `json:"charge_id"`
	Gateway   string    `json:"gateway"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	PaidAt    time.Time `json:"paid_at"`
}

func (p *snsPublisher) PublishOrderPaid(ctx context.Context, event domain.OrderPaid) error {
	msg, err := json.Marshal(orderPaidMessage{
		EventType: orderPaidEventType,
		OrderID:   event.OrderID,
		UserID:    event.UserID,
		PaymentID: event.PaymentID,
		ChargeID:  event.ChargeID,
		Gateway:   string(event.Gateway),
		Amount:    event.Amount.Amount.String(),
		Currency:  event.Amount.Currency.String(),
		PaidAt:    event.PaidAt,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(msg)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(orderPaidEventType),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns.Publish: %w", err)
	}

	return nil
}
