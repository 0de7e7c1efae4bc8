package domain

import (
	"time"
)

// PaymentStatus статус платежа
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentProvider платежный провайдер, через которого создан заказ.
// "pending" означает, что ни один провайдер не был доступен и платеж отложен.
type PaymentProvider string

const (
	ProviderRazorpay PaymentProvider = "razorpay"
	ProviderStripe   PaymentProvider = "stripe"
	ProviderPending  PaymentProvider = "pending"
)

// Payment представляет собой модель платежа
type Payment struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	SubscriptionID *int64          `json:"subscription_id,omitempty"`
	Amount         float64         `json:"amount"`
	Status         PaymentStatus   `json:"status"`
	ProviderRef    *string         `json:"provider_ref,omitempty"`
	Provider       PaymentProvider `json:"provider"`
	CreatedAt      time.Time       `json:"created_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
}

// VerifyPaymentRequest представляет запрос на верификацию подписи колбэка провайдера
type VerifyPaymentRequest struct {
	PaymentID  int64  `json:"payment_id" binding:"required"`
	OrderRef   string `json:"razorpay_order_id" binding:"required"`
	PaymentRef string `json:"razorpay_payment_id" binding:"required"`
	Signature  string `json:"razorpay_signature" binding:"required"`
}
