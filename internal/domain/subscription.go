package domain

import (
	"time"
)

// Frequency периодичность тарификации подписки
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// IsValid проверяет, что периодичность допустима
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Subscription представляет собой модель подписки
type Subscription struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user_id"`
	MilkPackageID *int64      `json:"milk_package_id,omitempty"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
	Frequency     Frequency   `json:"frequency"`
	IsPaused      bool        `json:"is_paused"`
	PausedFrom    *time.Time  `json:"paused_from,omitempty"`
	PausedUntil   *time.Time  `json:"paused_until,omitempty"`
	TotalCost     float64     `json:"total_cost"`
	IsActive      bool        `json:"is_active"`
	Newspapers    []Newspaper `json:"newspapers,omitempty"`
}

// SubscriptionRequest представляет запрос на создание подписки
type SubscriptionRequest struct {
	UserID        int64     `json:"user_id" binding:"required"`
	NewspaperIDs  []int64   `json:"newspaper_ids" binding:"required"`
	MilkPackageID *int64    `json:"milk_package_id"`
	Frequency     Frequency `json:"frequency" binding:"required,oneof=daily weekly monthly"`
}

// ToggleDeliveryRequest представляет запрос на переключение доставки на дату
type ToggleDeliveryRequest struct {
	Date string `json:"date" binding:"required"`
}
