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

// PostgresPaymentRepository реализация репозитория платежей через PostgreSQL
type PostgresPaymentRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresPaymentRepository создает новый репозиторий платежей через PostgreSQL
func NewPostgresPaymentRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db:  db,
		log: log,
	}
}

// Create создает новый платеж
func (r *PostgresPaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	query := `
		INSERT INTO payments (user_id, subscription_id, amount, status, provider_ref, provider)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		payment.UserID,
		payment.SubscriptionID,
		payment.Amount,
		payment.Status,
		payment.ProviderRef,
		payment.Provider,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Payment{}, repository.ErrDuplicate
		}
		return domain.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

// GetByID возвращает платеж по ID
func (r *PostgresPaymentRepository) GetByID(ctx context.Context, id int64) (domain.Payment, error) {
	query := `
		SELECT id, user_id, subscription_id, amount, status, provider_ref, provider, created_at, completed_at
		FROM payments
		WHERE id = $1
	`

	var p domain.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.UserID,
		&p.SubscriptionID,
		&p.Amount,
		&p.Status,
		&p.ProviderRef,
		&p.Provider,
		&p.CreatedAt,
		&p.CompletedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, repository.ErrNotFound
		}
		return domain.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

// GetByUserID возвращает платежи пользователя
func (r *PostgresPaymentRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Payment, error) {
	query := `
		SELECT id, user_id, subscription_id, amount, status, provider_ref, provider, created_at, completed_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.SubscriptionID,
			&p.Amount,
			&p.Status,
			&p.ProviderRef,
			&p.Provider,
			&p.CreatedAt,
			&p.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}

// UpdateStatus обновляет статус платежа и, опционально, время завершения
func (r *PostgresPaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, completedAt *time.Time) error {
	query := `
		UPDATE payments
		SET status = $1, completed_at = $2
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, status, completedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
