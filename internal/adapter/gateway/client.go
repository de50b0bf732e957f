// Package gateway talks to the hosted checkout provider that collects ad
// payments. It creates orders and reads their status back.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"foodshare/internal/config/configs"
	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

// Client implements port.PaymentGateway over the provider's REST API.
type Client struct {
	baseURL    string
	appID      string
	secret     string
	apiVersion string
	returnURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a gateway client from cfg.
func NewClient(cfg configs.Payment, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		appID:      cfg.AppID,
		secret:     cfg.SecretKey,
		apiVersion: cfg.APIVersion,
		returnURL:  cfg.ReturnURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
}

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       *orderMeta      `json:"order_meta,omitempty"`
}

type orderResponse struct {
	OrderID          string `json:"order_id"`
	OrderStatus      string `json:"order_status"`
	PaymentSessionID string `json:"payment_session_id"`
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("payment gateway error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("payment gateway error (status %d)", e.StatusCode)
}

// CreateOrder opens an order and returns its payment session id.
func (c *Client) CreateOrder(ctx context.Context, o port.Order) (string, error) {
	payload := createOrderRequest{
		OrderID:       o.OrderID,
		OrderAmount:   float64(o.Amount),
		OrderCurrency: o.Currency,
		CustomerDetails: customerDetails{
			CustomerID:    o.CustomerID,
			CustomerName:  o.CustomerName,
			CustomerEmail: o.CustomerEmail,
			CustomerPhone: o.CustomerPhone,
		},
	}
	if c.returnURL != "" {
		payload.OrderMeta = &orderMeta{ReturnURL: strings.ReplaceAll(c.returnURL, "{order_id}", o.OrderID)}
	}

	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", payload, &resp); err != nil {
		return "", err
	}
	return resp.PaymentSessionID, nil
}

// OrderStatus reads an order and maps the provider status: PAID is
// success, ACTIVE is still pending and anything else has failed.
func (c *Client) OrderStatus(ctx context.Context, orderID string) (domain.PaymentStatus, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &resp); err != nil {
		return "", err
	}
	switch resp.OrderStatus {
	case "PAID":
		return domain.PaymentSuccess, nil
	case "ACTIVE":
		return domain.PaymentPending, nil
	default:
		return domain.PaymentFailed, nil
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal gateway request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("x-client-id", c.appID)
	req.Header.Set("x-client-secret", c.secret)
	req.Header.Set("x-api-version", c.apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute gateway request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(raw, apiErr)
		c.logger.Warn("payment gateway non-2xx response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Code))
		return apiErr
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return nil
}
