package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Animesh0711/DailyEase/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings задает размеры пула соединений
type PoolSettings struct {
	MaxConns int32
	MinConns int32
}

// NewConnection создает пул соединений к PostgreSQL с заданными размерами
func NewConnection(ctx context.Context, connString string, settings PoolSettings, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Нулевые значения из конфигурации заменяются на дефолтные
	if settings.MaxConns <= 0 {
		settings.MaxConns = 10
	}
	if settings.MinConns <= 0 {
		settings.MinConns = 2
	}
	if settings.MinConns > settings.MaxConns {
		settings.MinConns = settings.MaxConns
	}

	poolConfig.MaxConns = settings.MaxConns
	poolConfig.MinConns = settings.MinConns
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	log.Infow("Connecting to PostgreSQL", "maxConns", settings.MaxConns, "minConns", settings.MinConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	log.Info("Successfully connected to PostgreSQL")
	return pool, nil
}
