package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodshare/internal/config/configs"
	"foodshare/internal/core/domain"
	"foodshare/internal/core/port"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(configs.Payment{
		BaseURL:    srv.URL,
		AppID:      "app",
		SecretKey:  "secret",
		APIVersion: "2023-08-01",
		ReturnURL:  "https://shop.example.com/return?order_id={order_id}",
		Timeout:    time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_CreateOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "app", r.Header.Get("x-client-id"))
		assert.Equal(t, "secret", r.Header.Get("x-client-secret"))
		assert.Equal(t, "2023-08-01", r.Header.Get("x-api-version"))

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "OD-1", req.OrderID)
		assert.Equal(t, float64(300), req.OrderAmount)
		assert.Equal(t, "INR", req.OrderCurrency)
		assert.Equal(t, "u1", req.CustomerDetails.CustomerID)
		require.NotNil(t, req.OrderMeta)
		assert.Equal(t, "https://shop.example.com/return?order_id=OD-1", req.OrderMeta.ReturnURL)

		_ = json.NewEncoder(w).Encode(orderResponse{OrderID: "OD-1", OrderStatus: "ACTIVE", PaymentSessionID: "sess_1"})
	})

	session, err := c.CreateOrder(context.Background(), port.Order{
		OrderID:       "OD-1",
		Amount:        300,
		Currency:      "INR",
		CustomerID:    "u1",
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9000000001",
	})
	require.NoError(t, err)
	assert.Equal(t, "sess_1", session)
}

func TestClient_OrderStatus(t *testing.T) {
	tests := []struct {
		remote string
		want   domain.PaymentStatus
	}{
		{"PAID", domain.PaymentSuccess},
		{"ACTIVE", domain.PaymentPending},
		{"EXPIRED", domain.PaymentFailed},
		{"TERMINATED", domain.PaymentFailed},
	}
	for _, tt := range tests {
		t.Run(tt.remote, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/orders/OD-9", r.URL.Path)
				_ = json.NewEncoder(w).Encode(orderResponse{OrderID: "OD-9", OrderStatus: tt.remote})
			})
			got, err := c.OrderStatus(context.Background(), "OD-9")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"order_not_found","message":"order does not exist"}`))
	})

	_, err := c.OrderStatus(context.Background(), "missing")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "order_not_found", apiErr.Code)
	assert.Contains(t, err.Error(), "order does not exist")
}
