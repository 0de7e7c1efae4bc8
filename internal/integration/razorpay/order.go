package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Animesh0711/DailyEase/internal/integration"
)

// OrderResponse представляет ответ Order от API Razorpay
type OrderResponse struct {
	ID         string            `json:"id"`
	Entity     string            `json:"entity"`
	Amount     int64             `json:"amount"`
	AmountPaid int64             `json:"amount_paid"`
	AmountDue  int64             `json:"amount_due"`
	Currency   string            `json:"currency"`
	Receipt    string            `json:"receipt"`
	Status     string            `json:"status"`
	Notes      map[string]string `json:"notes"`
	CreatedAt  int64             `json:"created_at"`
	Error      *ErrorResponse    `json:"error,omitempty"`
}

// ErrorResponse представляет ошибку API Razorpay
type ErrorResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// createOrderRequest тело запроса на создание заказа
type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// CreateOrder создает заказ в Razorpay на сумму в минимальных единицах валюты (пайсах)
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency string, notes map[string]string) (integration.Order, error) {
	c.log.Debug("Creating Razorpay order, amount: %d %s", amountMinor, currency)

	payload, err := json.Marshal(createOrderRequest{
		Amount:   amountMinor,
		Currency: currency,
		Notes:    notes,
	})
	if err != nil {
		return integration.Order{}, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		c.baseURL+"/orders",
		bytes.NewReader(payload),
	)
	if err != nil {
		return integration.Order{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return integration.Order{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var orderResp OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return integration.Order{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if orderResp.Error != nil {
		return integration.Order{}, fmt.Errorf("razorpay API error: %s", orderResp.Error.Description)
	}

	if resp.StatusCode != http.StatusOK {
		return integration.Order{}, fmt.Errorf("razorpay API returned status %d", resp.StatusCode)
	}

	c.log.Info("Successfully created Razorpay order with ID: %s, status: %s", orderResp.ID, orderResp.Status)

	// У Razorpay клиенту для чекаута нужен сам ID заказа
	return integration.Order{
		Ref:          orderResp.ID,
		ClientHandle: orderResp.ID,
	}, nil
}

// RetrieveStatus возвращает статус заказа в Razorpay
func (c *Client) RetrieveStatus(ctx context.Context, ref string) (integration.OrderStatus, error) {
	c.log.Debug("Getting Razorpay order with ID: %s", ref)

	req, err := http.NewRequestWithContext(
		ctx,
		"GET",
		c.baseURL+"/orders/"+ref,
		nil,
	)
	if err != nil {
		return integration.OrderStatusFailed, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return integration.OrderStatusFailed, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var orderResp OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return integration.OrderStatusFailed, fmt.Errorf("failed to decode response: %w", err)
	}

	if orderResp.Error != nil {
		return integration.OrderStatusFailed, fmt.Errorf("razorpay API error: %s", orderResp.Error.Description)
	}

	c.log.Debug("Razorpay order %s status: %s", ref, orderResp.Status)

	// paid означает полностью оплаченный заказ; created и attempted еще не терминальны
	switch orderResp.Status {
	case "paid":
		return integration.OrderStatusSucceeded, nil
	case "created", "attempted":
		return integration.OrderStatusPending, nil
	default:
		return integration.OrderStatusFailed, nil
	}
}
