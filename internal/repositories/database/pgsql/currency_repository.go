package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_desk/internal/core/ports/repositories"
	"github.com/SscSPs/freight_desk/internal/models"
	"github.com/SscSPs/freight_desk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `id, code, name, symbol, decimal_places, country, is_base, is_active, sort_order,
	created_at, created_by, updated_at, updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyID,
		&c.CurrencyCode,
		&c.Name,
		&c.Symbol,
		&c.DecimalPlaces,
		&c.Country,
		&c.IsBase,
		&c.IsActive,
		&c.SortOrder,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveCurrency inserts a currency. A new base currency demotes the previous one
// inside the same transaction so there is never more than one base.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if modelCurr.IsBase {
		if _, err := tx.Exec(ctx, `UPDATE currencies SET is_base = FALSE, updated_at = NOW(), updated_by = $1 WHERE is_base`, modelCurr.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to clear previous base currency: %w", err)
		}
	}

	query := `
		INSERT INTO currencies (code, name, symbol, decimal_places, country, is_base, is_active, sort_order, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING ` + currencyColumns

	saved, err := scanCurrency(tx.QueryRow(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.DecimalPlaces,
		modelCurr.Country,
		modelCurr.IsBase,
		modelCurr.IsActive,
		modelCurr.SortOrder,
		modelCurr.CreatedBy,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, modelCurr.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	domainCurr := mapping.ToDomainCurrency(saved)
	return &domainCurr, nil
}

// SetCurrencyActive toggles is_active. Every other column stays as created.
func (r *PgxCurrencyRepository) SetCurrencyActive(ctx context.Context, currencyCode string, active bool, userID string) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE currencies SET is_active = $2, updated_at = NOW(), updated_by = $3 WHERE code = $1`,
		currencyCode, active, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + currencyCode + " not found")
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1;`
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindBaseCurrency retrieves the base currency.
func (r *PgxCurrencyRepository) FindBaseCurrency(ctx context.Context) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE is_base LIMIT 1;`
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("base currency not configured")
		}
		return nil, fmt.Errorf("failed to find base currency: %w", err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves currencies ordered for display.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
