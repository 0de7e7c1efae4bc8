package domain

// Newspaper представляет собой газету из каталога
type Newspaper struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Language     string  `json:"language"`
	Genre        string  `json:"genre"`
	PriceDaily   float64 `json:"price_daily"`
	PriceWeekly  float64 `json:"price_weekly"`
	PriceMonthly float64 `json:"price_monthly"`
	Description  string  `json:"description,omitempty"`
	IsActive     bool    `json:"is_active"`
}

// MilkPackage представляет собой пакет молока из каталога
type MilkPackage struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	QuantityML   int     `json:"quantity_ml"`
	PriceDaily   float64 `json:"price_daily"`
	PriceWeekly  float64 `json:"price_weekly"`
	PriceMonthly float64 `json:"price_monthly"`
	Description  string  `json:"description,omitempty"`
	IsActive     bool    `json:"is_active"`
}

// NewspaperRequest представляет запрос на создание или обновление газеты
type NewspaperRequest struct {
	Name         string  `json:"name" binding:"required"`
	Language     string  `json:"language" binding:"required"`
	Genre        string  `json:"genre" binding:"required"`
	PriceDaily   float64 `json:"price_daily" binding:"gte=0"`
	PriceWeekly  float64 `json:"price_weekly" binding:"gte=0"`
	PriceMonthly float64 `json:"price_monthly" binding:"gte=0"`
	Description  string  `json:"description"`
}

// MilkPackageRequest представляет запрос на создание или обновление пакета молока
type MilkPackageRequest struct {
	Name         string  `json:"name" binding:"required"`
	QuantityML   int     `json:"quantity_ml" binding:"required,gt=0"`
	PriceDaily   float64 `json:"price_daily" binding:"gte=0"`
	PriceWeekly  float64 `json:"price_weekly" binding:"gte=0"`
	PriceMonthly float64 `json:"price_monthly" binding:"gte=0"`
	Description  string  `json:"description"`
}
