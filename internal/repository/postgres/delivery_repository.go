package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDeliveryRepository реализация репозитория доставок через PostgreSQL
type PostgresDeliveryRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresDeliveryRepository создает новый репозиторий доставок через PostgreSQL
func NewPostgresDeliveryRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresDeliveryRepository {
	return &PostgresDeliveryRepository{
		db:  db,
		log: log,
	}
}

// FindForDay возвращает доставку подписки в пределах календарного дня [dayStart, dayEnd)
func (r *PostgresDeliveryRepository) FindForDay(ctx context.Context, subscriptionID int64, dayStart, dayEnd time.Time) (domain.Delivery, error) {
	query := `
		SELECT id, user_id, subscription_id, scheduled_date, status, delivered_at, notes, created_at
		FROM deliveries
		WHERE subscription_id = $1 AND scheduled_date >= $2 AND scheduled_date < $3
		LIMIT 1
	`

	var d domain.Delivery
	err := r.db.QueryRow(ctx, query, subscriptionID, dayStart, dayEnd).Scan(
		&d.ID,
		&d.UserID,
		&d.SubscriptionID,
		&d.ScheduledDate,
		&d.Status,
		&d.DeliveredAt,
		&d.Notes,
		&d.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Delivery{}, repository.ErrNotFound
		}
		return domain.Delivery{}, fmt.Errorf("failed to find delivery: %w", err)
	}

	return d, nil
}

// Create создает новую доставку.
// Уникальный индекс по (subscription_id, дню доставки) превращает гонку
// двух конкурентных переключений в ErrDuplicate вместо двойной записи.
func (r *PostgresDeliveryRepository) Create(ctx context.Context, delivery domain.Delivery) (domain.Delivery, error) {
	query := `
		INSERT INTO deliveries (user_id, subscription_id, scheduled_date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		delivery.UserID,
		delivery.SubscriptionID,
		delivery.ScheduledDate,
		delivery.Status,
		delivery.Notes,
	).Scan(&delivery.ID, &delivery.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Delivery{}, repository.ErrDuplicate
		}
		return domain.Delivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}

	return delivery, nil
}

// Delete удаляет доставку
func (r *PostgresDeliveryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete delivery: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// GetByUserID возвращает все доставки пользователя в порядке создания
func (r *PostgresDeliveryRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Delivery, error) {
	query := `
		SELECT id, user_id, subscription_id, scheduled_date, status, delivered_at, notes, created_at
		FROM deliveries
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []domain.Delivery
	for rows.Next() {
		var d domain.Delivery
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.SubscriptionID,
			&d.ScheduledDate,
			&d.Status,
			&d.DeliveredAt,
			&d.Notes,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deliveries: %w", err)
	}

	return deliveries, nil
}
