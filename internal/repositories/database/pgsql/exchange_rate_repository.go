package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_desk/internal/core/ports/repositories"
	"github.com/SscSPs/freight_desk/internal/models"
	"github.com/SscSPs/freight_desk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// $1 is always the reference date used for is_current.
const rateColumns = `
	er.id, er.from_currency_id, fc.code, fc.name, er.to_currency_id, tc.code, tc.name,
	er.rate, er.rate_buy, er.rate_sell, er.source, er.source_reference,
	er.week_number, er.year, er.valid_from, er.valid_to, er.notes,
	(er.valid_from <= $1::date AND er.valid_to >= $1::date) AS is_current,
	er.created_at, er.created_by, er.updated_at, er.updated_by`

const rateFrom = `
	FROM exchange_rates er
	JOIN currencies fc ON fc.id = er.from_currency_id
	JOIN currencies tc ON tc.id = er.to_currency_id`

const upsertRateQuery = `
	INSERT INTO exchange_rates (
		from_currency_id, to_currency_id, rate, rate_buy, rate_sell,
		source, source_reference, week_number, year, valid_from, valid_to,
		notes, created_by, updated_by
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::date, $11::date, $12, $13, $13)
	ON CONFLICT (from_currency_id, to_currency_id, week_number, year, source)
	DO UPDATE SET
		rate = EXCLUDED.rate,
		rate_buy = EXCLUDED.rate_buy,
		rate_sell = EXCLUDED.rate_sell,
		source_reference = EXCLUDED.source_reference,
		notes = EXCLUDED.notes,
		updated_at = NOW(),
		updated_by = EXCLUDED.updated_by
	RETURNING id, rate, rate_buy, rate_sell, created_at, created_by, updated_at, updated_by`

// PgxExchangeRateRepository implements the weekly rate ledger on PostgreSQL.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func sqlDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func rateScanTargets(m *models.ExchangeRate) []any {
	return []any{
		&m.ExchangeRateID, &m.FromCurrencyID, &m.FromCurrencyCode, &m.FromCurrencyName,
		&m.ToCurrencyID, &m.ToCurrencyCode, &m.ToCurrencyName,
		&m.Rate, &m.RateBuy, &m.RateSell, &m.Source, &m.SourceReference,
		&m.WeekNumber, &m.Year, &m.ValidFrom, &m.ValidTo, &m.Notes,
		&m.IsCurrent,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
}

// WeekBoundaries evaluates get_week_boundaries for date.
func (r *PgxExchangeRateRepository) WeekBoundaries(ctx context.Context, date time.Time) (domain.WeekWindow, error) {
	return weekBoundaries(ctx, r.Pool, date)
}

func weekBoundaries(ctx context.Context, q interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, date time.Time) (domain.WeekWindow, error) {
	var w domain.WeekWindow
	err := q.QueryRow(ctx,
		`SELECT week_start, week_end, week_num, year_num FROM get_week_boundaries($1::date)`,
		sqlDate(date),
	).Scan(&w.Start, &w.End, &w.Number, &w.Year)
	if err != nil {
		return domain.WeekWindow{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to compute week boundaries", err)
	}
	w.Start = domain.DateOf(w.Start)
	w.End = domain.DateOf(w.End)
	return w, nil
}

// UpsertRates writes all rates for one week inside a single transaction.
// Conflicting rows keep their identity and window; rate, buy/sell, reference
// and notes take the new values. Same-key writers serialize on the row lock.
func (r *PgxExchangeRateRepository) UpsertRates(ctx context.Context, week domain.WeekWindow, rates []domain.ExchangeRate, today time.Time) ([]domain.ExchangeRate, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	storeWeek, err := weekBoundaries(ctx, tx, week.Start)
	if err != nil {
		return nil, err
	}
	if !storeWeek.Equal(week) {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "week boundary mismatch",
			fmt.Errorf("application computed %s, database computed %s", week, storeWeek))
	}

	stored := make([]domain.ExchangeRate, 0, len(rates))
	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		err := tx.QueryRow(ctx, upsertRateQuery,
			m.FromCurrencyID, m.ToCurrencyID, m.Rate, m.RateBuy, m.RateSell,
			m.Source, m.SourceReference, week.Number, week.Year,
			sqlDate(week.Start), sqlDate(week.End),
			m.Notes, m.CreatedBy,
		).Scan(&m.ExchangeRateID, &m.Rate, &m.RateBuy, &m.RateSell,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError,
				fmt.Sprintf("failed to upsert exchange rate %s->%s", rate.FromCurrencyCode, rate.ToCurrencyCode), err)
		}

		saved := mapping.ToDomainExchangeRate(m)
		saved.Week = week
		saved.IsCurrent = week.Contains(today)
		stored = append(stored, saved)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return stored, nil
}

// FindRateForDate retrieves the record for the pair and source whose window contains date.
// IsCurrent on the result is relative to date.
func (r *PgxExchangeRateRepository) FindRateForDate(ctx context.Context, fromCode, toCode string, source domain.RateSource, date time.Time) (*domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + rateFrom + `
		WHERE fc.code = $2 AND tc.code = $3 AND er.source = $4
		  AND er.valid_from <= $1::date AND er.valid_to >= $1::date
		LIMIT 1;`

	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, sqlDate(date), strings.ToUpper(fromCode), strings.ToUpper(toCode), string(source)).
		Scan(rateScanTargets(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find exchange rate", err)
	}

	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// ListRatesForDate retrieves every rate whose window contains date.
func (r *PgxExchangeRateRepository) ListRatesForDate(ctx context.Context, source *domain.RateSource, date time.Time) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + rateFrom + `
		WHERE er.valid_from <= $1::date AND er.valid_to >= $1::date`
	args := []any{sqlDate(date)}
	if source != nil {
		args = append(args, string(*source))
		query += fmt.Sprintf(" AND er.source = $%d", len(args))
	}
	query += ` ORDER BY fc.sort_order, tc.sort_order, er.source;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list current exchange rates", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeRate, error) {
		var m models.ExchangeRate
		if err := row.Scan(rateScanTargets(&m)...); err != nil {
			return domain.ExchangeRate{}, err
		}
		return mapping.ToDomainExchangeRate(m), nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan exchange rates", err)
	}
	return rates, nil
}

// ListRateHistory retrieves records newest week first. PrevRate is the rate
// for the same pair and source in the calendar week immediately before, and
// stays null when that week has no record even if older weeks do.
func (r *PgxExchangeRateRepository) ListRateHistory(ctx context.Context, filter domain.RateHistoryFilter, today time.Time) ([]domain.ExchangeRateHistory, error) {
	query := `SELECT ` + rateColumns + `, prev.rate AS prev_rate` + rateFrom + `
	LEFT JOIN exchange_rates prev
		ON prev.from_currency_id = er.from_currency_id
		AND prev.to_currency_id = er.to_currency_id
		AND prev.source = er.source
		AND prev.valid_from = er.valid_from - 7
		WHERE 1=1`
	args := []any{sqlDate(today)}

	if filter.FromCurrencyCode != nil {
		args = append(args, strings.ToUpper(*filter.FromCurrencyCode))
		query += fmt.Sprintf(" AND fc.code = $%d", len(args))
	}
	if filter.ToCurrencyCode != nil {
		args = append(args, strings.ToUpper(*filter.ToCurrencyCode))
		query += fmt.Sprintf(" AND tc.code = $%d", len(args))
	}
	if filter.Source != nil {
		args = append(args, string(*filter.Source))
		query += fmt.Sprintf(" AND er.source = $%d", len(args))
	}

	query += " ORDER BY er.year DESC, er.week_number DESC, fc.sort_order, tc.sort_order, er.source"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list exchange rate history", err)
	}
	defer rows.Close()

	history, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeRateHistory, error) {
		var m models.ExchangeRateHistory
		targets := append(rateScanTargets(&m.ExchangeRate), &m.PrevRate)
		if err := row.Scan(targets...); err != nil {
			return domain.ExchangeRateHistory{}, err
		}
		return mapping.ToDomainExchangeRateHistory(m), nil
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan exchange rate history", err)
	}
	return history, nil
}
