package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Animesh0711/DailyEase/internal/integration"
)

// PaymentIntentResponse представляет ответ PaymentIntent от API Stripe
type PaymentIntentResponse struct {
	ID           string            `json:"id"`
	Object       string            `json:"object"`
	Amount       int64             `json:"amount"`
	ClientSecret string            `json:"client_secret"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	Metadata     map[string]string `json:"metadata"`
	Created      int64             `json:"created"`
	Error        *ErrorResponse    `json:"error,omitempty"`
}

// ErrorResponse представляет ошибку API Stripe
type ErrorResponse struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateOrder создает намерение платежа в Stripe на сумму в минимальных единицах валюты
func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency string, notes map[string]string) (integration.Order, error) {
	c.log.Debug("Creating Stripe payment intent, amount: %d %s", amountMinor, currency)

	// Stripe принимает form-encoded тело
	formData := url.Values{}
	formData.Add("amount", fmt.Sprintf("%d", amountMinor))
	formData.Add("currency", strings.ToLower(currency))
	formData.Add("payment_method_types[]", "card")

	for key, value := range notes {
		formData.Add(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		"POST",
		c.baseURL+"/payment_intents",
		strings.NewReader(formData.Encode()),
	)
	if err != nil {
		return integration.Order{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Add("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return integration.Order{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var intentResp PaymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intentResp); err != nil {
		return integration.Order{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if intentResp.Error != nil {
		return integration.Order{}, fmt.Errorf("stripe API error: %s", intentResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return integration.Order{}, fmt.Errorf("stripe API returned status %d", resp.StatusCode)
	}

	c.log.Info("Successfully created Stripe payment intent with ID: %s, status: %s", intentResp.ID, intentResp.Status)

	return integration.Order{
		Ref:          intentResp.ID,
		ClientHandle: intentResp.ClientSecret,
	}, nil
}

// RetrieveStatus возвращает статус намерения платежа в Stripe
func (c *Client) RetrieveStatus(ctx context.Context, ref string) (integration.OrderStatus, error) {
	c.log.Debug("Getting Stripe payment intent with ID: %s", ref)

	req, err := http.NewRequestWithContext(
		ctx,
		"GET",
		c.baseURL+"/payment_intents/"+ref,
		nil,
	)
	if err != nil {
		return integration.OrderStatusFailed, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return integration.OrderStatusFailed, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var intentResp PaymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intentResp); err != nil {
		return integration.OrderStatusFailed, fmt.Errorf("failed to decode response: %w", err)
	}

	if intentResp.Error != nil {
		return integration.OrderStatusFailed, fmt.Errorf("stripe API error: %s", intentResp.Error.Message)
	}

	c.log.Debug("Stripe payment intent %s status: %s", ref, intentResp.Status)

	switch intentResp.Status {
	case "succeeded":
		return integration.OrderStatusSucceeded, nil
	case "canceled":
		return integration.OrderStatusFailed, nil
	default:
		return integration.OrderStatusPending, nil
	}
}
