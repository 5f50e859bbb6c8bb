package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const defaultPayPalURL = "https://api-m.sandbox.paypal.com"

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	URL          string
	HTTPClient   *http.Client
}

// payPalGateway captures orders that the buyer already approved client side.
// The payment token is the PayPal order id.
type payPalGateway struct {
	cfg    PayPalConfig
	client *http.Client
	logger *zap.Logger

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewPayPal(cfg PayPalConfig, logger *zap.Logger) (port.PaymentGateway, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("paypal credentials are empty")
	}
	if cfg.URL == "" {
		cfg.URL = defaultPayPalURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &payPalGateway{
		cfg:    cfg,
		client: client,
		logger: logger.Named("paypal"),
	}, nil
}

type payPalErrorBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Details []struct {
		Issue       string `json:"issue"`
		Description string `json:"description"`
	} `json:"details"`
	// oauth endpoint errors
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type payPalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type payPalPurchaseUnit struct {
	Amount   payPalAmount `json:"amount"`
	Payments struct {
		Captures []struct {
			ID     string       `json:"id"`
			Status string       `json:"status"`
			Amount payPalAmount `json:"amount"`
		} `json:"captures"`
	} `json:"payments"`
}

type payPalOrderBody struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PurchaseUnits []payPalPurchaseUnit `json:"purchase_units"`
}

func (g *payPalGateway) Charge(ctx context.Context, req domain.ChargeRequest) (domain.Charge, error) {
	if req.Token == "" {
		return domain.Charge{}, &domain.GatewayError{
			Kind:    domain.GatewayInvalidRequest,
			Message: "payment token is empty",
		}
	}

	accessToken, err := g.token(ctx)
	if err != nil {
		return domain.Charge{}, err
	}

	orderURL := g.cfg.URL + "/v2/checkout/orders/" + url.PathEscape(req.Token)

	// the buyer approved the amount client side, it must match the order total before capture
	var approved payPalOrderBody
	if err := g.call(ctx, http.MethodGet, orderURL, accessToken, "", &approved); err != nil {
		return domain.Charge{}, err
	}
	if len(approved.PurchaseUnits) == 0 || !sameAmount(approved.PurchaseUnits[0].Amount, req) {
		var amount payPalAmount
		if len(approved.PurchaseUnits) > 0 {
			amount = approved.PurchaseUnits[0].Amount
		}
		return domain.Charge{}, amountMismatch("approved", amount, req)
	}

	var capture payPalOrderBody
	if err := g.call(ctx, http.MethodPost, orderURL+"/capture", accessToken, req.IdempotencyKey, &capture); err != nil {
		return domain.Charge{}, err
	}

	if len(capture.PurchaseUnits) == 0 || len(capture.PurchaseUnits[0].Payments.Captures) == 0 {
		return domain.Charge{}, &domain.GatewayError{
			Kind:    domain.GatewayGenericFailure,
			Message: fmt.Sprintf("order %s has no captures, status %s", capture.ID, capture.Status),
		}
	}

	captured := capture.PurchaseUnits[0].Payments.Captures[0]
	switch captured.Status {
	case "COMPLETED":
	case "PENDING":
		// funds have not moved yet and may still be denied
		return domain.Charge{}, &domain.GatewayError{
			Kind:    domain.GatewayGenericFailure,
			Message: fmt.Sprintf("capture %s is pending", captured.ID),
		}
	default:
		return domain.Charge{}, &domain.GatewayError{
			Kind:    domain.GatewayCardDeclined,
			Message: fmt.Sprintf("capture %s", strings.ToLower(captured.Status)),
		}
	}

	if !sameAmount(captured.Amount, req) {
		g.logger.Error("captured amount differs from order total",
			zap.String("capture_id", captured.ID),
			zap.String("captured", captured.Amount.Value+" "+captured.Amount.CurrencyCode),
			zap.Int64("expected_minor_units", req.Amount),
			zap.String("expected_currency", req.Currency.String()),
		)
		return domain.Charge{}, amountMismatch("captured", captured.Amount, req)
	}

	return domain.Charge{ID: captured.ID}, nil
}

// call sends an authorized JSON request to the orders API and decodes a successful response into out.
func (g *payPalGateway) call(ctx context.Context, method, endpoint, accessToken, requestID string, out any) error {
	var reqBody io.Reader
	if method == http.MethodPost {
		reqBody = strings.NewReader("{}")
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return &domain.GatewayError{Kind: domain.GatewayUnclassified, Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Prefer", "return=representation")
	if requestID != "" {
		httpReq.Header.Set("PayPal-Request-Id", requestID)
	}

	body, status, err := g.do(httpReq)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		g.resetToken()
	}
	if status >= http.StatusBadRequest {
		return classifyPayPalError(status, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.GatewayError{Kind: domain.GatewayUnclassified, Err: fmt.Errorf("json.Unmarshal: %w", err)}
	}

	return nil
}

func (g *payPalGateway) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Now().Before(g.expiresAt) {
		return g.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", &domain.GatewayError{Kind: domain.GatewayUnclassified, Err: err}
	}
	httpReq.SetBasicAuth(g.cfg.ClientID, g.cfg.ClientSecret)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, status, err := g.do(httpReq)
	if err != nil {
		return "", err
	}
	if status >= http.StatusBadRequest {
		return "", classifyPayPalError(status, body)
	}

	var tokenBody struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tokenBody); err != nil {
		return "", &domain.GatewayError{Kind: domain.GatewayUnclassified, Err: fmt.Errorf("json.Unmarshal: %w", err)}
	}

	g.accessToken = tokenBody.AccessToken
	// refresh a minute early
	g.expiresAt = time.Now().Add(time.Duration(tokenBody.ExpiresIn)*time.Second - time.Minute)

	return g.accessToken, nil
}

func (g *payPalGateway) resetToken() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.accessToken = ""
}

func (g *payPalGateway) do(req *http.Request) ([]byte, int, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, 0, domain.AsGatewayError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, domain.AsGatewayError(err)
	}

	return body, resp.StatusCode, nil
}

var payPalDeclineIssues = map[string]bool{
	"INSTRUMENT_DECLINED":     true,
	"TRANSACTION_REFUSED":     true,
	"PAYER_ACTION_REQUIRED":   true,
	"PAYER_CANNOT_PAY":        true,
	"CARD_EXPIRED":            true,
	"DECLINED_DUE_TO_RELATED": true,
}

func classifyPayPalError(status int, body []byte) *domain.GatewayError {
	var errBody payPalErrorBody
	_ = json.Unmarshal(body, &errBody)

	gwErr := &domain.GatewayError{
		Message: errBody.Message,
		Err:     fmt.Errorf("paypal status %d: %s", status, strings.TrimSpace(string(body))),
	}
	if gwErr.Message == "" {
		gwErr.Message = errBody.ErrorDescription
	}

	issue := ""
	if len(errBody.Details) > 0 {
		issue = errBody.Details[0].Issue
		if errBody.Details[0].Description != "" {
			gwErr.Message = errBody.Details[0].Description
		}
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		gwErr.Kind = domain.GatewayAuthFailure
	case status == http.StatusTooManyRequests || errBody.Name == "RATE_LIMIT_REACHED":
		gwErr.Kind = domain.GatewayRateLimited
	case payPalDeclineIssues[issue]:
		gwErr.Kind = domain.GatewayCardDeclined
	case status >= http.StatusInternalServerError:
		gwErr.Kind = domain.GatewayGenericFailure
	case status >= http.StatusBadRequest:
		gwErr.Kind = domain.GatewayInvalidRequest
	default:
		gwErr.Kind = domain.GatewayUnclassified
	}

	return gwErr
}

func sameAmount(amount payPalAmount, req domain.ChargeRequest) bool {
	value, err := decimal.NewFromString(amount.Value)
	if err != nil {
		return false
	}

	unit, err := currency.ParseISO(amount.CurrencyCode)
	if err != nil || unit != req.Currency {
		return false
	}

	return domain.Money{Amount: value, Currency: unit}.MinorUnits() == req.Amount
}

func amountMismatch(stage string, amount payPalAmount, req domain.ChargeRequest) *domain.GatewayError {
	msg := fmt.Sprintf("%s amount %s %s differs from order total %d %s minor units",
		stage, amount.Value, amount.CurrencyCode, req.Amount, req.Currency)

	return &domain.GatewayError{
		Kind:    domain.GatewayInvalidRequest,
		Message: msg,
	}
}
