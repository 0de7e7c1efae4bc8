package repository

import (
	"context"

	"github.com/Animesh0711/DailyEase/internal/domain"
)

// CatalogRepository интерфейс для чтения и администрирования каталога
type CatalogRepository interface {
	// GetActiveNewspapers возвращает все активные газеты
	GetActiveNewspapers(ctx context.Context) ([]domain.Newspaper, error)

	// GetNewspaperByID возвращает газету по ID
	GetNewspaperByID(ctx context.Context, id int64) (domain.Newspaper, error)

	// FindActiveNewspapersByIDs возвращает активные газеты по набору ID.
	// Отсутствующие ID не считаются ошибкой: вызывающий сверяет длину результата.
	FindActiveNewspapersByIDs(ctx context.Context, ids []int64) ([]domain.Newspaper, error)

	// GetNewspapersByLanguage возвращает активные газеты на указанном языке
	GetNewspapersByLanguage(ctx context.Context, language string) ([]domain.Newspaper, error)

	// GetNewspapersByGenre возвращает активные газеты указанного жанра
	GetNewspapersByGenre(ctx context.Context, genre string) ([]domain.Newspaper, error)

	// GetActiveMilkPackages возвращает все активные пакеты молока
	GetActiveMilkPackages(ctx context.Context) ([]domain.MilkPackage, error)

	// GetMilkPackageByID возвращает пакет молока по ID
	GetMilkPackageByID(ctx context.Context, id int64) (domain.MilkPackage, error)

	// FindActiveMilkPackage возвращает активный пакет молока по ID
	FindActiveMilkPackage(ctx context.Context, id int64) (domain.MilkPackage, error)

	// CreateNewspaper создает новую газету
	CreateNewspaper(ctx context.Context, n domain.Newspaper) (domain.Newspaper, error)

	// UpdateNewspaper обновляет существующую газету
	UpdateNewspaper(ctx context.Context, n domain.Newspaper) error

	// CreateMilkPackage создает новый пакет молока
	CreateMilkPackage(ctx context.Context, m domain.MilkPackage) (domain.MilkPackage, error)

	// UpdateMilkPackage обновляет существующий пакет молока
	UpdateMilkPackage(ctx context.Context, m domain.MilkPackage) error
}
