package repository

import (
	"context"

	"github.com/Animesh0711/DailyEase/internal/domain"
)

// UserRepository интерфейс для работы с пользователями
type UserRepository interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id int64) (domain.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}
