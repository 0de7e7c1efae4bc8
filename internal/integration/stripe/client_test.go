package stripe

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
	c := NewClient(Config{APIKey: "sk_test_key"}, logger.New(logger.ERROR))
	c.baseURL = serverURL
	return c
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "6800", r.PostForm.Get("amount"))
		assert.Equal(t, "inr", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))
		assert.Equal(t, "42", r.PostForm.Get("metadata[user_id]"))

		json.NewEncoder(w).Encode(PaymentIntentResponse{
			ID:           "pi_abc123",
			Object:       "payment_intent",
			Amount:       6800,
			ClientSecret: "pi_abc123_secret_xyz",
			Currency:     "inr",
			Status:       "requires_payment_method",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	order, err := client.CreateOrder(context.Background(), 6800, "INR", map[string]string{"user_id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "pi_abc123", order.Ref)
	assert.Equal(t, "pi_abc123_secret_xyz", order.ClientHandle)
}

func TestCreateOrder_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(PaymentIntentResponse{
			Error: &ErrorResponse{Type: "invalid_request_error", Message: "Invalid API Key provided"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateOrder(context.Background(), 6800, "INR", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
}

func TestRetrieveStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected integration.OrderStatus
	}{
		{"succeeded intent", "succeeded", integration.OrderStatusSucceeded},
		{"canceled intent", "canceled", integration.OrderStatusFailed},
		{"processing intent", "processing", integration.OrderStatusPending},
		{"requires payment method", "requires_payment_method", integration.OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/payment_intents/pi_abc123", r.URL.Path)
				json.NewEncoder(w).Encode(PaymentIntentResponse{
					ID:     "pi_abc123",
					Status: tt.status,
				})
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			status, err := client.RetrieveStatus(context.Background(), "pi_abc123")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}
