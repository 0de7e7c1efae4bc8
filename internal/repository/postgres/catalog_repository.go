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

const newspaperColumns = `id, name, language, genre, price_daily, price_weekly, price_monthly, description, is_active`
const milkPackageColumns = `id, name, quantity_ml, price_daily, price_weekly, price_monthly, description, is_active`

// PostgresCatalogRepository реализация репозитория каталога через PostgreSQL
type PostgresCatalogRepository struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

// NewPostgresCatalogRepository создает новый репозиторий каталога через PostgreSQL
func NewPostgresCatalogRepository(db *pgxpool.Pool, log *logger.Logger) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db:  db,
		log: log,
	}
}

func scanNewspaper(row pgx.Row) (domain.Newspaper, error) {
	var n domain.Newspaper
	err := row.Scan(
		&n.ID,
		&n.Name,
		&n.Language,
		&n.Genre,
		&n.PriceDaily,
		&n.PriceWeekly,
		&n.PriceMonthly,
		&n.Description,
		&n.IsActive,
	)
	return n, err
}

func (r *PostgresCatalogRepository) queryNewspapers(ctx context.Context, query string, args ...any) ([]domain.Newspaper, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query newspapers: %w", err)
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

// GetActiveNewspapers возвращает все активные газеты
func (r *PostgresCatalogRepository) GetActiveNewspapers(ctx context.Context) ([]domain.Newspaper, error) {
	query := `SELECT ` + newspaperColumns + ` FROM newspapers WHERE is_active = TRUE ORDER BY id`
	return r.queryNewspapers(ctx, query)
}

// GetNewspaperByID возвращает газету по ID
func (r *PostgresCatalogRepository) GetNewspaperByID(ctx context.Context, id int64) (domain.Newspaper, error) {
	query := `SELECT ` + newspaperColumns + ` FROM newspapers WHERE id = $1`

	n, err := scanNewspaper(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Newspaper{}, repository.ErrNotFound
		}
		return domain.Newspaper{}, fmt.Errorf("failed to get newspaper: %w", err)
	}

	return n, nil
}

// FindActiveNewspapersByIDs возвращает активные газеты по набору ID
func (r *PostgresCatalogRepository) FindActiveNewspapersByIDs(ctx context.Context, ids []int64) ([]domain.Newspaper, error) {
	query := `SELECT ` + newspaperColumns + ` FROM newspapers WHERE id = ANY($1) AND is_active = TRUE ORDER BY id`
	return r.queryNewspapers(ctx, query, ids)
}

// GetNewspapersByLanguage возвращает активные газеты на указанном языке
func (r *PostgresCatalogRepository) GetNewspapersByLanguage(ctx context.Context, language string) ([]domain.Newspaper, error) {
	query := `SELECT ` + newspaperColumns + ` FROM newspapers WHERE language = $1 AND is_active = TRUE ORDER BY id`
	return r.queryNewspapers(ctx, query, language)
}

// GetNewspapersByGenre возвращает активные газеты указанного жанра
func (r *PostgresCatalogRepository) GetNewspapersByGenre(ctx context.Context, genre string) ([]domain.Newspaper, error) {
	query := `SELECT ` + newspaperColumns + ` FROM newspapers WHERE genre = $1 AND is_active = TRUE ORDER BY id`
	return r.queryNewspapers(ctx, query, genre)
}

func scanMilkPackage(row pgx.Row) (domain.MilkPackage, error) {
	var m domain.MilkPackage
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.QuantityML,
		&m.PriceDaily,
		&m.PriceWeekly,
		&m.PriceMonthly,
		&m.Description,
		&m.IsActive,
	)
	return m, err
}

// GetActiveMilkPackages возвращает все активные пакеты молока
func (r *PostgresCatalogRepository) GetActiveMilkPackages(ctx context.Context) ([]domain.MilkPackage, error) {
	query := `SELECT ` + milkPackageColumns + ` FROM milk_packages WHERE is_active = TRUE ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query milk packages: %w", err)
	}
	defer rows.Close()

	var packages []domain.MilkPackage
	for rows.Next() {
		m, err := scanMilkPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan milk package: %w", err)
		}
		packages = append(packages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating milk packages: %w", err)
	}

	return packages, nil
}

// GetMilkPackageByID возвращает пакет молока по ID
func (r *PostgresCatalogRepository) GetMilkPackageByID(ctx context.Context, id int64) (domain.MilkPackage, error) {
	query := `SELECT ` + milkPackageColumns + ` FROM milk_packages WHERE id = $1`

	m, err := scanMilkPackage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MilkPackage{}, repository.ErrNotFound
		}
		return domain.MilkPackage{}, fmt.Errorf("failed to get milk package: %w", err)
	}

	return m, nil
}

// FindActiveMilkPackage возвращает активный пакет молока по ID
func (r *PostgresCatalogRepository) FindActiveMilkPackage(ctx context.Context, id int64) (domain.MilkPackage, error) {
	query := `SELECT ` + milkPackageColumns + ` FROM milk_packages WHERE id = $1 AND is_active = TRUE`

	m, err := scanMilkPackage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MilkPackage{}, repository.ErrNotFound
		}
		return domain.MilkPackage{}, fmt.Errorf("failed to get milk package: %w", err)
	}

	return m, nil
}

// CreateNewspaper создает новую газету
func (r *PostgresCatalogRepository) CreateNewspaper(ctx context.Context, n domain.Newspaper) (domain.Newspaper, error) {
	query := `
		INSERT INTO newspapers (name, language, genre, price_daily, price_weekly, price_monthly, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		n.Name,
		n.Language,
		n.Genre,
		n.PriceDaily,
		n.PriceWeekly,
		n.PriceMonthly,
		n.Description,
	).Scan(&n.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Newspaper{}, repository.ErrDuplicate
		}
		return domain.Newspaper{}, fmt.Errorf("failed to create newspaper: %w", err)
	}

	n.IsActive = true
	return n, nil
}

// UpdateNewspaper обновляет существующую газету
func (r *PostgresCatalogRepository) UpdateNewspaper(ctx context.Context, n domain.Newspaper) error {
	query := `
		UPDATE newspapers
		SET name = $1, language = $2, genre = $3, price_daily = $4, price_weekly = $5, price_monthly = $6, description = $7, is_active = $8
		WHERE id = $9
	`

	result, err := r.db.Exec(
		ctx,
		query,
		n.Name,
		n.Language,
		n.Genre,
		n.PriceDaily,
		n.PriceWeekly,
		n.PriceMonthly,
		n.Description,
		n.IsActive,
		n.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to update newspaper: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// CreateMilkPackage создает новый пакет молока
func (r *PostgresCatalogRepository) CreateMilkPackage(ctx context.Context, m domain.MilkPackage) (domain.MilkPackage, error) {
	query := `
		INSERT INTO milk_packages (name, quantity_ml, price_daily, price_weekly, price_monthly, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id
	`

	err := r.db.QueryRow(
		ctx,
		query,
		m.Name,
		m.QuantityML,
		m.PriceDaily,
		m.PriceWeekly,
		m.PriceMonthly,
		m.Description,
	).Scan(&m.ID)

	if err != nil {
		return domain.MilkPackage{}, fmt.Errorf("failed to create milk package: %w", err)
	}

	m.IsActive = true
	return m, nil
}

// UpdateMilkPackage обновляет существующий пакет молока
func (r *PostgresCatalogRepository) UpdateMilkPackage(ctx context.Context, m domain.MilkPackage) error {
	query := `
		UPDATE milk_packages
		SET name = $1, quantity_ml = $2, price_daily = $3, price_weekly = $4, price_monthly = $5, description = $6, is_active = $7
		WHERE id = $8
	`

	result, err := r.db.Exec(
		ctx,
		query,
		m.Name,
		m.QuantityML,
		m.PriceDaily,
		m.PriceWeekly,
		m.PriceMonthly,
		m.Description,
		m.IsActive,
		m.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update milk package: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
