package domain

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
)

var (
	ErrNotFound                  = errors.New("not found")
	ErrNoActiveOrder             = errors.New("no active order")
	ErrNotInCart                 = errors.New("item is not in the cart")
	ErrInvalidCheckoutInput      = errors.New("invalid checkout input")
	ErrUnrecognizedPaymentOption = errors.New("unrecognized payment option")
	ErrEmptyOrder                = errors.New("order has no items")
	ErrNoBillingAddress          = errors.New("order has no billing address")
	ErrPaymentOptionMismatch     = errors.New("payment option differs from checkout")
)

type GatewayErrorKind int

const (
	GatewayUnclassified GatewayErrorKind = iota
	GatewayCardDeclined
	GatewayRateLimited
	GatewayInvalidRequest
	GatewayAuthFailure
	GatewayNetworkFailure
	GatewayGenericFailure
)

func (k GatewayErrorKind) String() string {
	switch k {
	case GatewayCardDeclined:
		return "card_declined"
	case GatewayRateLimited:
		return "rate_limited"
	case GatewayInvalidRequest:
		return "invalid_request"
	case GatewayAuthFailure:
		return "auth_failure"
	case GatewayNetworkFailure:
		return "network_failure"
	case GatewayGenericFailure:
		return "gateway_failure"
	default:
		return "unclassified"
	}
}

// GatewayError is a classified failure reported by a payment gateway.
// Message is the gateway's own human readable text, possibly empty.
type GatewayError struct {
	Kind    GatewayErrorKind
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("gateway %s: %s", e.Kind, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// AsGatewayError returns err as a *GatewayError, classifying transport level
// failures that did not come from a gateway adapter.
func AsGatewayError(err error) *GatewayError {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return &GatewayError{Kind: GatewayNetworkFailure, Err: err}
	}

	return &GatewayError{Kind: GatewayUnclassified, Err: err}
}

// ReconciliationError means money was captured by the gateway but the order
// could not be closed locally.
type ReconciliationError struct {
	OrderID  uuid.UUID
	ChargeID string
	Err      error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("charge[%s] for order[%s] not recorded: %v", e.ChargeID, e.OrderID, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}
