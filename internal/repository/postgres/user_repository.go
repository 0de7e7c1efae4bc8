package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Animesh0711/DailyEase/internal/domain"
	"github.com/Animesh0711/DailyEase/internal/repository"
	"github.com/Animesh0711/DailyEase/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, password_hash, full_name, phone, address, city, pincode, is_active, is_admin, created_at`

// PostgresUserRepository реализация репозитория пользователей через PostgreSQL
type PostgresUserRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresUserRepository создает новый репозиторий пользователей через PostgreSQL
func NewPostgresUserRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresUserRepository {
	return &PostgresUserRepository{
		db:  db,
		log: log,
	}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.Phone,
		&u.Address,
		&u.City,
		&u.Pincode,
		&u.IsActive,
		&u.IsAdmin,
		&u.CreatedAt,
	)
	return u, err
}

// Create создает нового пользователя
func (r *PostgresUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash, full_name, phone, address, city, pincode, is_active, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, FALSE)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx,
		query,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Phone,
		user.Address,
		user.City,
		user.Pincode,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.User{}, repository.ErrDuplicate
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	user.IsActive = true
	return user, nil
}

// GetByID возвращает пользователя по ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, repository.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByEmail возвращает пользователя по email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, repository.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}
