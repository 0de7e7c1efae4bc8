package repository

import (
	"context"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
)

// PaymentRepository интерфейс для работы с платежами
type PaymentRepository interface {
	// Create создает новый платеж
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)

	// GetByID возвращает платеж по ID
	GetByID(ctx context.Context, id int64) (domain.Payment, error)

	// GetByUserID возвращает платежи пользователя
	GetByUserID(ctx context.Context, userID int64) ([]domain.Payment, error)

	// UpdateStatus обновляет статус платежа и, опционально, время завершения
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, completedAt *time.Time) error
}
