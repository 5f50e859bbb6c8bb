package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

func (h *Handler) orderSummary(c *gin.Context) {
	order, err := h.svc.Summary.Summary(c.Request.Context(), c.GetString(userIDKey))
	if errors.Is(err, domain.ErrNoActiveOrder) {
		respond(c, http.StatusConflict, levelError, msgNoActiveOrder, "/", nil)
		return
	}
	if err != nil {
		h.internalError(c, "summary.Summary", err)
		return
	}

	total, err := order.Total(h.currency)
	if err != nil {
		h.internalError(c, "order.Total", err)
		return
	}

	respond(c, http.StatusOK, "", "", "", toOrderDTO(order, total))
}

func (h *Handler) checkout(c *gin.Context) {
	var form domain.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respond(c, http.StatusUnprocessableEntity, levelWarning, "Failed checkout: the form could not be read.", "/checkout", nil)
		return
	}

	option, err := h.svc.Checkout.Checkout(c.Request.Context(), c.GetString(userIDKey), form)
	switch {
	case errors.Is(err, domain.ErrNoActiveOrder):
		respond(c, http.StatusConflict, levelInfo, msgNoActiveOrder, "/order-summary", nil)
	case errors.Is(err, domain.ErrInvalidCheckoutInput):
		respond(c, http.StatusUnprocessableEntity, levelWarning, "Failed checkout: please check the billing address.", "/checkout", nil)
	case errors.Is(err, domain.ErrUnrecognizedPaymentOption):
		respond(c, http.StatusUnprocessableEntity, levelWarning, "Invalid payment option selected.", "/checkout", nil)
	case err != nil:
		h.internalError(c, "checkout.Checkout", err)
	default:
		respond(c, http.StatusOK, "", "", "/payment/"+string(option), checkoutDTO{PaymentOption: string(option)})
	}
}

func (h *Handler) pay(c *gin.Context) {
	option, err := domain.ParsePaymentOption(c.Param("option"))
	if err != nil {
		respond(c, http.StatusUnprocessableEntity, levelWarning, "Invalid payment option selected.", "/checkout", nil)
		return
	}

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusUnprocessableEntity, levelWarning, "Invalid payment request.", "/payment/"+string(option), nil)
		return
	}

	payment, err := h.svc.Payment.Pay(c.Request.Context(), c.GetString(userIDKey), option, req.Token)
	if err != nil {
		h.paymentError(c, option, err)
		return
	}

	respond(c, http.StatusOK, levelSuccess, "Your order was successful!", "/", toPaymentDTO(payment))
}

func (h *Handler) paymentError(c *gin.Context, option domain.PaymentOption, err error) {
	retry := "/payment/" + string(option)

	var (
		recErr *domain.ReconciliationError
		gwErr  *domain.GatewayError
	)

	switch {
	case errors.As(err, &recErr):
		h.logger.Error("payment needs reconciliation",
			zap.String("user_id", c.GetString(userIDKey)),
			zap.Stringer("order_id", recErr.OrderID),
			zap.String("charge_id", recErr.ChargeID),
		)
		respond(c, http.StatusInternalServerError, levelError,
			"Your payment was received but the order could not be completed. Our team has been notified.", "/", nil)
	case errors.As(err, &gwErr):
		level, message := gatewayNotice(gwErr)
		respond(c, http.StatusPaymentRequired, level, message, retry, nil)
	case errors.Is(err, domain.ErrNoActiveOrder):
		respond(c, http.StatusConflict, levelInfo, msgNoActiveOrder, "/order-summary", nil)
	case errors.Is(err, domain.ErrEmptyOrder):
		respond(c, http.StatusConflict, levelInfo, "Your cart is empty.", "/order-summary", nil)
	case errors.Is(err, domain.ErrNoBillingAddress):
		respond(c, http.StatusConflict, levelWarning, "Please provide a billing address first.", "/checkout", nil)
	case errors.Is(err, domain.ErrPaymentOptionMismatch):
		respond(c, http.StatusConflict, levelWarning, "Please pay with the option chosen at checkout.", "/checkout", nil)
	case errors.Is(err, domain.ErrUnrecognizedPaymentOption):
		respond(c, http.StatusUnprocessableEntity, levelWarning, "Invalid payment option selected.", "/checkout", nil)
	default:
		h.internalError(c, "payment.Pay", err)
	}
}

func gatewayNotice(err *domain.GatewayError) (string, string) {
	switch err.Kind {
	case domain.GatewayCardDeclined:
		if err.Message != "" {
			return levelWarning, err.Message
		}
		return levelWarning, "Your card was declined."
	case domain.GatewayRateLimited:
		return levelWarning, "Too many payment attempts. Please try again shortly."
	case domain.GatewayInvalidRequest:
		return levelWarning, "Invalid payment details."
	case domain.GatewayAuthFailure:
		return levelError, "Payment provider authentication failed."
	case domain.GatewayNetworkFailure:
		return levelError, "Could not reach the payment provider."
	case domain.GatewayGenericFailure:
		return levelError, "Something went wrong. You were not charged. Please try again."
	default:
		return levelError, "A serious error occurred. We have been notified."
	}
}
