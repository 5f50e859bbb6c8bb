package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
)

const (
	msgItemAdded       = "This item was added to your cart."
	msgQuantityUpdated = "This item quantity was updated."
	msgItemRemoved     = "This item was removed from your cart."
	msgNotInCart       = "This item was not in your cart."
	msgNoActiveOrder   = "You do not have an active order."
)

func outcomeMessage(outcome domain.CartOutcome) string {
	switch outcome {
	case domain.ItemAdded:
		return msgItemAdded
	case domain.QuantityUpdated:
		return msgQuantityUpdated
	default:
		return msgItemRemoved
	}
}

func (h *Handler) addToCart(c *gin.Context) {
	slug := c.Param("slug")

	outcome, err := h.svc.Cart.Add(c.Request.Context(), c.GetString(userIDKey), slug)
	if err != nil {
		h.cartError(c, "cart.Add", slug, err)
		return
	}

	respond(c, http.StatusOK, levelInfo, outcomeMessage(outcome), "/order-summary", nil)
}

func (h *Handler) removeFromCart(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.svc.Cart.Remove(c.Request.Context(), c.GetString(userIDKey), slug); err != nil {
		h.cartError(c, "cart.Remove", slug, err)
		return
	}

	respond(c, http.StatusOK, levelInfo, msgItemRemoved, "/order-summary", nil)
}

func (h *Handler) removeSingleFromCart(c *gin.Context) {
	slug := c.Param("slug")

	outcome, err := h.svc.Cart.RemoveSingle(c.Request.Context(), c.GetString(userIDKey), slug)
	if err != nil {
		h.cartError(c, "cart.RemoveSingle", slug, err)
		return
	}

	respond(c, http.StatusOK, levelInfo, outcomeMessage(outcome), "/order-summary", nil)
}

func (h *Handler) cartError(c *gin.Context, op, slug string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respond(c, http.StatusNotFound, levelError, "This item does not exist.", "/", nil)
	case errors.Is(err, domain.ErrNotInCart):
		respond(c, http.StatusConflict, levelInfo, msgNotInCart, "/items/"+slug, nil)
	case errors.Is(err, domain.ErrNoActiveOrder):
		respond(c, http.StatusConflict, levelInfo, msgNoActiveOrder, "/items/"+slug, nil)
	default:
		h.internalError(c, op, err)
	}
}
