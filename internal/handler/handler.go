package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/service"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const (
	levelInfo    = "info"
	levelSuccess = "success"
	levelWarning = "warning"
	levelError   = "error"
)

type notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type response struct {
	Notice   *notice `json:"notice,omitempty"`
	Redirect string  `json:"redirect,omitempty"`
	Data     any     `json:"data,omitempty"`
}

type Handler struct {
	svc service.Services
	// currency renders totals of empty orders
	currency currency.Unit
	logger   *zap.Logger
}

func New(svc service.Services, fallback currency.Unit, logger *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		currency: fallback,
		logger:   logger.Named("http"),
	}
}

// Router registers all storefront routes on a fresh gin engine.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(h.logger))

	r.GET("/items", h.listItems)
	r.GET("/items/:slug", h.getItem)

	user := r.Group("/", RequireUser())
	user.POST("/cart/:slug/add", h.addToCart)
	user.POST("/cart/:slug/remove", h.removeFromCart)
	user.POST("/cart/:slug/remove-single", h.removeSingleFromCart)
	user.GET("/order-summary", h.orderSummary)
	user.POST("/checkout", h.checkout)
	user.POST("/payment/:option", h.pay)

	return r
}

func respond(c *gin.Context, status int, level, message, redirect string, data any) {
	resp := response{Redirect: redirect, Data: data}
	if message != "" {
		resp.Notice = &notice{Level: level, Message: message}
	}

	c.JSON(status, resp)
}

// internalError hides err from the client.
func (h *Handler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error(op+" failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	respond(c, http.StatusInternalServerError, levelError, "Something went wrong. Please try again later.", "/", nil)
}
