package repository

import (
	"context"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
)

// DeliveryRepository интерфейс для работы с доставками
type DeliveryRepository interface {
	// FindForDay возвращает доставку подписки в пределах календарного дня [dayStart, dayEnd)
	FindForDay(ctx context.Context, subscriptionID int64, dayStart, dayEnd time.Time) (domain.Delivery, error)

	// Create создает новую доставку
	Create(ctx context.Context, delivery domain.Delivery) (domain.Delivery, error)

	// Delete удаляет доставку
	Delete(ctx context.Context, id int64) error

	// GetByUserID возвращает все доставки пользователя в порядке создания
	GetByUserID(ctx context.Context, userID int64) ([]domain.Delivery, error)
}
