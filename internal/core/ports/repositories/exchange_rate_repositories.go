package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/freight_desk/internal/core/domain"
)

// ExchangeRateReader defines read operations for the weekly rate ledger.
// Rows are returned with IsCurrent evaluated against the supplied today.
type ExchangeRateReader interface {
	// FindRateForDate retrieves the record for the directed pair and source whose
	// week window contains date. Returns apperrors.ErrNotFound when absent.
	FindRateForDate(ctx context.Context, fromCode, toCode string, source domain.RateSource, date time.Time) (*domain.ExchangeRate, error)

	// ListRatesForDate retrieves every record whose window contains date, optionally for one source.
	ListRatesForDate(ctx context.Context, source *domain.RateSource, date time.Time) ([]domain.ExchangeRate, error)

	// ListRateHistory retrieves records ordered by (year, week) descending.
	ListRateHistory(ctx context.Context, filter domain.RateHistoryFilter, today time.Time) ([]domain.ExchangeRateHistory, error)

	// WeekBoundaries evaluates the storage-side week function for date.
	WeekBoundaries(ctx context.Context, date time.Time) (domain.WeekWindow, error)
}

// ExchangeRateWriter defines write operations for the weekly rate ledger.
type ExchangeRateWriter interface {
	// UpsertRates writes every rate into week in one transaction. An existing
	// (from, to, week, year, source) row is updated in place.
	UpsertRates(ctx context.Context, week domain.WeekWindow, rates []domain.ExchangeRate, today time.Time) ([]domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
