package integration

import (
	"context"

	"github.com/Animesh0711/DailyEase/internal/domain"
)

// OrderStatus статус заказа на стороне провайдера
type OrderStatus string

const (
	OrderStatusSucceeded OrderStatus = "succeeded"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFailed    OrderStatus = "failed"
)

// Order представляет созданный у провайдера заказ/намерение платежа
type Order struct {
	// Ref идентификатор заказа у провайдера
	Ref string

	// ClientHandle клиентский секрет или идентификатор для фронтенда
	ClientHandle string
}

// Gateway интерфейс платежного шлюза. Обе интеграции (Razorpay, Stripe)
// взаимозаменяемы с точки зрения оркестратора платежей.
type Gateway interface {
	// Name возвращает имя провайдера
	Name() domain.PaymentProvider

	// CreateOrder создает заказ на указанную сумму в минимальных единицах валюты
	CreateOrder(ctx context.Context, amountMinor int64, currency string, notes map[string]string) (Order, error)

	// RetrieveStatus возвращает статус существующего заказа
	RetrieveStatus(ctx context.Context, ref string) (OrderStatus, error)
}
