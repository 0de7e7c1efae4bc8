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
	"github.com/jackc/pgx/v5/pgxpool"
)

const subscriptionColumns = `id, user_id, milk_package_id, start_date, end_date, frequency, is_paused, paused_from, paused_until, total_cost, is_active`

// PostgresSubscriptionRepository реализация репозитория подписок через PostgreSQL
type PostgresSubscriptionRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresSubscriptionRepository создает новый репозиторий подписок через PostgreSQL
func NewPostgresSubscriptionRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{
		db:  db,
		log: log,
	}
}

func scanSubscription(row pgx.Row) (domain.Subscription, error) {
	var sub domain.Subscription
	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.MilkPackageID,
		&sub.StartDate,
		&sub.EndDate,
		&sub.Frequency,
		&sub.IsPaused,
		&sub.PausedFrom,
		&sub.PausedUntil,
		&sub.TotalCost,
		&sub.IsActive,
	)
	return sub, err
}

// CreateWithNewspapers создает подписку вместе со связями с газетами в одной транзакции
func (r *PostgresSubscriptionRepository) CreateWithNewspapers(ctx context.Context, sub domain.Subscription, newspaperIDs []int64) (domain.Subscription, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO subscriptions (user_id, milk_package_id, start_date, frequency, total_cost, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, start_date
	`

	err = tx.QueryRow(
		ctx,
		query,
		sub.UserID,
		sub.MilkPackageID,
		sub.StartDate,
		sub.Frequency,
		sub.TotalCost,
	).Scan(&sub.ID, &sub.StartDate)
	if err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	for _, newspaperID := range newspaperIDs {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO subscription_newspapers (subscription_id, newspaper_id) VALUES ($1, $2)`,
			sub.ID,
			newspaperID,
		)
		if err != nil {
			return domain.Subscription{}, fmt.Errorf("failed to link newspaper %d: %w", newspaperID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	sub.IsActive = true
	return sub, nil
}

// GetByID возвращает подписку по ID вместе с газетами
func (r *PostgresSubscriptionRepository) GetByID(ctx context.Context, id int64) (domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Subscription{}, repository.ErrNotFound
		}
		return domain.Subscription{}, fmt.Errorf("failed to get subscription: %w", err)
	}

	newspapers, err := r.getNewspapers(ctx, sub.ID)
	if err != nil {
		return domain.Subscription{}, err
	}
	sub.Newspapers = newspapers

	return sub, nil
}

// GetActiveByUserID возвращает активные подписки пользователя
func (r *PostgresSubscriptionRepository) GetActiveByUserID(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE user_id = $1 AND is_active = TRUE ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	for i := range subs {
		newspapers, err := r.getNewspapers(ctx, subs[i].ID)
		if err != nil {
			return nil, err
		}
		subs[i].Newspapers = newspapers
	}

	return subs, nil
}

func (r *PostgresSubscriptionRepository) getNewspapers(ctx context.Context, subscriptionID int64) ([]domain.Newspaper, error) {
	query := `
		SELECT n.id, n.name, n.language, n.genre, n.price_daily, n.price_weekly, n.price_monthly, n.description, n.is_active
		FROM newspapers n
		JOIN subscription_newspapers sn ON sn.newspaper_id = n.id
		WHERE sn.subscription_id = $1
		ORDER BY n.id
	`

	rows, err := r.db.Query(ctx, query, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscription newspapers: %w", err)
	}
	defer rows.Close()

	var newspapers []domain.Newspaper
	for rows.Next() {
		n, err := scanNewspaper(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan newspaper: %w", err)
		}
		newspapers = append(newspapers, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating newspapers: %w", err)
	}

	return newspapers, nil
}

// SetPause устанавливает окно паузы подписки
func (r *PostgresSubscriptionRepository) SetPause(ctx context.Context, id int64, from, until time.Time) error {
	query := `
		UPDATE subscriptions
		SET is_paused = TRUE, paused_from = $1, paused_until = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, from, until, id)
	if err != nil {
		return fmt.Errorf("failed to pause subscription: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ClearPause снимает паузу подписки
func (r *PostgresSubscriptionRepository) ClearPause(ctx context.Context, id int64) error {
	query := `
		UPDATE subscriptions
		SET is_paused = FALSE, paused_from = NULL, paused_until = NULL
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to resume subscription: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
