package repository

import (
	"context"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
)

// SubscriptionRepository интерфейс для работы с подписками
type SubscriptionRepository interface {
	// CreateWithNewspapers создает подписку вместе со связями с газетами
	// в одной транзакции: либо сохраняется все, либо ничего.
	CreateWithNewspapers(ctx context.Context, sub domain.Subscription, newspaperIDs []int64) (domain.Subscription, error)

	// GetByID возвращает подписку по ID вместе с газетами
	GetByID(ctx context.Context, id int64) (domain.Subscription, error)

	// GetActiveByUserID возвращает активные подписки пользователя
	GetActiveByUserID(ctx context.Context, userID int64) ([]domain.Subscription, error)

	// SetPause устанавливает окно паузы подписки
	SetPause(ctx context.Context, id int64, from, until time.Time) error

	// ClearPause снимает паузу подписки
	ClearPause(ctx context.Context, id int64) error
}
