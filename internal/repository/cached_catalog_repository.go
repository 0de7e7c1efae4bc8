package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/pkg/logger"
)

// CachedCatalogRepository реализует CatalogRepository с кешированием чтений.
// Записи идут напрямую в основное хранилище и инвалидируют кеш каталога.
type CachedCatalogRepository struct {
	repo  CatalogRepository
	cache *RedisCacheRepository
	log   *logger.Logger
}

// NewCachedCatalogRepository создает новый репозиторий каталога с кешированием
func NewCachedCatalogRepository(
	repo CatalogRepository,
	cache *RedisCacheRepository,
	log *logger.Logger,
) CatalogRepository {
	return &CachedCatalogRepository{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func idsKey(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "ids:" + strings.Join(parts, ",")
}

// getNewspapers возвращает список газет под ключом: сначала из кеша, потом из БД
func (r *CachedCatalogRepository) getNewspapers(ctx context.Context, key string, fetch func() ([]domain.Newspaper, error)) ([]domain.Newspaper, error) {
	cached, err := r.cache.GetCachedNewspapers(ctx, key)
	if err != nil {
		r.log.Warnw("Error getting newspapers from cache", "error", err, "key", key)
		// Продолжаем выполнение при ошибке кеша
	}
	if cached != nil {
		return cached, nil
	}

	newspapers, err := fetch()
	if err != nil {
		return nil, err
	}

	if err := r.cache.CacheNewspapers(ctx, key, newspapers); err != nil {
		r.log.Warnw("Failed to cache newspapers after fetching", "error", err, "key", key)
	}

	return newspapers, nil
}

// GetActiveNewspapers возвращает все активные газеты
func (r *CachedCatalogRepository) GetActiveNewspapers(ctx context.Context) ([]domain.Newspaper, error) {
	return r.getNewspapers(ctx, "active", func() ([]domain.Newspaper, error) {
		return r.repo.GetActiveNewspapers(ctx)
	})
}

// GetNewspaperByID возвращает газету по ID (без кеширования единичных чтений)
func (r *CachedCatalogRepository) GetNewspaperByID(ctx context.Context, id int64) (domain.Newspaper, error) {
	return r.repo.GetNewspaperByID(ctx, id)
}

// FindActiveNewspapersByIDs возвращает активные газеты по набору ID
func (r *CachedCatalogRepository) FindActiveNewspapersByIDs(ctx context.Context, ids []int64) ([]domain.Newspaper, error) {
	return r.getNewspapers(ctx, idsKey(ids), func() ([]domain.Newspaper, error) {
		return r.repo.FindActiveNewspapersByIDs(ctx, ids)
	})
}

// GetNewspapersByLanguage возвращает активные газеты на указанном языке
func (r *CachedCatalogRepository) GetNewspapersByLanguage(ctx context.Context, language string) ([]domain.Newspaper, error) {
	return r.getNewspapers(ctx, "language:"+language, func() ([]domain.Newspaper, error) {
		return r.repo.GetNewspapersByLanguage(ctx, language)
	})
}

// GetNewspapersByGenre возвращает активные газеты указанного жанра
func (r *CachedCatalogRepository) GetNewspapersByGenre(ctx context.Context, genre string) ([]domain.Newspaper, error) {
	return r.getNewspapers(ctx, "genre:"+genre, func() ([]domain.Newspaper, error) {
		return r.repo.GetNewspapersByGenre(ctx, genre)
	})
}

// GetActiveMilkPackages возвращает все активные пакеты молока
func (r *CachedCatalogRepository) GetActiveMilkPackages(ctx context.Context) ([]domain.MilkPackage, error) {
	cached, err := r.cache.GetCachedMilkPackages(ctx, "active")
	if err != nil {
		r.log.Warnw("Error getting milk packages from cache", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	packages, err := r.repo.GetActiveMilkPackages(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.CacheMilkPackages(ctx, "active", packages); err != nil {
		r.log.Warnw("Failed to cache milk packages after fetching", "error", err)
	}

	return packages, nil
}

// GetMilkPackageByID возвращает пакет молока по ID
func (r *CachedCatalogRepository) GetMilkPackageByID(ctx context.Context, id int64) (domain.MilkPackage, error) {
	return r.repo.GetMilkPackageByID(ctx, id)
}

// FindActiveMilkPackage возвращает активный пакет молока по ID
func (r *CachedCatalogRepository) FindActiveMilkPackage(ctx context.Context, id int64) (domain.MilkPackage, error) {
	return r.repo.FindActiveMilkPackage(ctx, id)
}

// CreateNewspaper создает новую газету и инвалидирует кеш каталога
func (r *CachedCatalogRepository) CreateNewspaper(ctx context.Context, n domain.Newspaper) (domain.Newspaper, error) {
	created, err := r.repo.CreateNewspaper(ctx, n)
	if err != nil {
		return domain.Newspaper{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

// UpdateNewspaper обновляет существующую газету и инвалидирует кеш каталога
func (r *CachedCatalogRepository) UpdateNewspaper(ctx context.Context, n domain.Newspaper) error {
	if err := r.repo.UpdateNewspaper(ctx, n); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

// CreateMilkPackage создает новый пакет молока и инвалидирует кеш каталога
func (r *CachedCatalogRepository) CreateMilkPackage(ctx context.Context, m domain.MilkPackage) (domain.MilkPackage, error) {
	created, err := r.repo.CreateMilkPackage(ctx, m)
	if err != nil {
		return domain.MilkPackage{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

// UpdateMilkPackage обновляет существующий пакет молока и инвалидирует кеш каталога
func (r *CachedCatalogRepository) UpdateMilkPackage(ctx context.Context, m domain.MilkPackage) error {
	if err := r.repo.UpdateMilkPackage(ctx, m); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedCatalogRepository) invalidate(ctx context.Context) {
	if err := r.cache.InvalidateCatalogCache(ctx); err != nil {
		r.log.Warnw("Failed to invalidate catalog cache", "error", err)
	}
}
