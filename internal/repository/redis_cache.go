package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const (
	// Префиксы ключей для различных типов данных
	newspapersKeyPrefix   = "newspapers:"
	milkPackagesKeyPrefix = "milk_packages:"

	// TTL для кэша
	defaultCacheTTL = 15 * time.Minute
)

// RedisCacheRepository реализует кеширование каталога с использованием Redis
type RedisCacheRepository struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisCacheRepository создает новый экземпляр Redis репозитория
func NewRedisCacheRepository(redisAddr, redisPassword string, redisDB int, log *logger.Logger) (*RedisCacheRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	// Проверяем соединение с Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorw("Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Infow("Connected to Redis successfully", "addr", redisAddr)
	return &RedisCacheRepository{
		client: client,
		log:    log,
	}, nil
}

// Close закрывает соединение с Redis
func (r *RedisCacheRepository) Close() error {
	return r.client.Close()
}

// CacheNewspapers кеширует список газет под указанным ключом
func (r *RedisCacheRepository) CacheNewspapers(ctx context.Context, key string, newspapers []domain.Newspaper) error {
	data, err := json.Marshal(newspapers)
	if err != nil {
		return fmt.Errorf("failed to marshal newspapers: %w", err)
	}

	if err := r.client.Set(ctx, newspapersKeyPrefix+key, data, defaultCacheTTL).Err(); err != nil {
		r.log.Errorw("Failed to cache newspapers in Redis", "error", err, "key", key)
		return fmt.Errorf("failed to cache newspapers: %w", err)
	}

	r.log.Debugw("Newspapers cached successfully", "key", key, "count", len(newspapers))
	return nil
}

// GetCachedNewspapers получает список газет из кеша.
// Отсутствие ключа не ошибка: возвращается nil.
func (r *RedisCacheRepository) GetCachedNewspapers(ctx context.Context, key string) ([]domain.Newspaper, error) {
	data, err := r.client.Get(ctx, newspapersKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.log.Debugw("Newspapers not found in cache", "key", key)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get newspapers from cache: %w", err)
	}

	var newspapers []domain.Newspaper
	if err := json.Unmarshal(data, &newspapers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached newspapers: %w", err)
	}

	r.log.Debugw("Newspapers retrieved from cache", "key", key, "count", len(newspapers))
	return newspapers, nil
}

// CacheMilkPackages кеширует список пакетов молока под указанным ключом
func (r *RedisCacheRepository) CacheMilkPackages(ctx context.Context, key string, packages []domain.MilkPackage) error {
	data, err := json.Marshal(packages)
	if err != nil {
		return fmt.Errorf("failed to marshal milk packages: %w", err)
	}

	if err := r.client.Set(ctx, milkPackagesKeyPrefix+key, data, defaultCacheTTL).Err(); err != nil {
		r.log.Errorw("Failed to cache milk packages in Redis", "error", err, "key", key)
		return fmt.Errorf("failed to cache milk packages: %w", err)
	}

	r.log.Debugw("Milk packages cached successfully", "key", key, "count", len(packages))
	return nil
}

// GetCachedMilkPackages получает список пакетов молока из кеша
func (r *RedisCacheRepository) GetCachedMilkPackages(ctx context.Context, key string) ([]domain.MilkPackage, error) {
	data, err := r.client.Get(ctx, milkPackagesKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.log.Debugw("Milk packages not found in cache", "key", key)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get milk packages from cache: %w", err)
	}

	var packages []domain.MilkPackage
	if err := json.Unmarshal(data, &packages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached milk packages: %w", err)
	}

	return packages, nil
}

// InvalidateCatalogCache удаляет все закешированные ключи каталога
func (r *RedisCacheRepository) InvalidateCatalogCache(ctx context.Context) error {
	for _, prefix := range []string{newspapersKeyPrefix, milkPackagesKeyPrefix} {
		iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
				return fmt.Errorf("failed to delete cache key %s: %w", iter.Val(), err)
			}
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
	}

	r.log.Debugw("Catalog cache invalidated")
	return nil
}
