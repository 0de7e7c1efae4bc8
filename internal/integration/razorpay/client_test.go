package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Animesh0711/DailyEase/internal/integration"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

func newTestClient(serverURL string) *Client {
	c := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "rzp_test_secret"}, logger.New(logger.ERROR))
	c.baseURL = serverURL
	return c
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		var body createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(18720), body.Amount)
		assert.Equal(t, "INR", body.Currency)
		assert.Equal(t, "42", body.Notes["user_id"])

		json.NewEncoder(w).Encode(OrderResponse{
			ID:       "order_abc123",
			Entity:   "order",
			Amount:   body.Amount,
			Currency: body.Currency,
			Status:   "created",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	order, err := client.CreateOrder(context.Background(), 18720, "INR", map[string]string{"user_id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "order_abc123", order.Ref)
	assert.Equal(t, "order_abc123", order.ClientHandle)
}

func TestCreateOrder_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(OrderResponse{
			Error: &ErrorResponse{Code: "BAD_REQUEST_ERROR", Description: "amount must be at least INR 1.00"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateOrder(context.Background(), 10, "INR", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be at least")
}

func TestRetrieveStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected integration.OrderStatus
	}{
		{"paid order", "paid", integration.OrderStatusSucceeded},
		{"created order", "created", integration.OrderStatusPending},
		{"attempted order", "attempted", integration.OrderStatusPending},
		{"unknown status", "expired", integration.OrderStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/orders/order_abc123", r.URL.Path)
				json.NewEncoder(w).Encode(OrderResponse{
					ID:     "order_abc123",
					Status: tt.status,
				})
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			status, err := client.RetrieveStatus(context.Background(), "order_abc123")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestRetrieveStatus_ServerUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.RetrieveStatus(context.Background(), "order_abc123")
	assert.Error(t, err)
}
