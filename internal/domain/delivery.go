package domain

import (
	"time"
)

// DeliveryStatus статус доставки
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusSkipped   DeliveryStatus = "skipped"
)

// Delivery представляет собой запланированную доставку на календарный день
type Delivery struct {
	ID             int64          `json:"id"`
	UserID         int64          `json:"user_id"`
	SubscriptionID int64          `json:"subscription_id"`
	ScheduledDate  time.Time      `json:"scheduled_date"`
	Status         DeliveryStatus `json:"status"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// CalendarEntry элемент календаря доставок за день
type CalendarEntry struct {
	ID             int64          `json:"id"`
	SubscriptionID int64          `json:"subscription_id"`
	Status         DeliveryStatus `json:"status"`
	Time           string         `json:"time"`
}
