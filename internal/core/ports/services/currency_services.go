package services

import (
	"context"
	"time"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// GetBaseCurrency retrieves the base currency.
	GetBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves currencies, optionally active only.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// SetCurrencyActive toggles a currency's active flag.
	SetCurrencyActive(ctx context.Context, currencyCode string, active bool, userID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read and resolution operations for the rate ledger.
type ExchangeRateReaderSvc interface {
	// ListCurrentRates retrieves rates whose week contains today, optionally for one source.
	ListCurrentRates(ctx context.Context, source *domain.RateSource) ([]domain.ExchangeRate, error)

	// ListRateHistory retrieves rates ordered by (year, week) descending.
	ListRateHistory(ctx context.Context, filter domain.RateHistoryFilter) ([]domain.ExchangeRateHistory, error)

	// ResolveRate finds the applicable rate for a pair, direct first then inverse.
	ResolveRate(ctx context.Context, fromCode, toCode string, source *domain.RateSource, asOf *time.Time) (*domain.ResolvedRate, error)

	// Convert multiplies amount by the rate ResolveRate returns.
	Convert(ctx context.Context, req dto.ConvertRequest) (*domain.ConversionResult, error)

	// WeekOf returns the week window for date, today when nil.
	WeekOf(date *time.Time) domain.WeekWindow
}

// ExchangeRateWriterSvc defines write operations for the rate ledger.
type ExchangeRateWriterSvc interface {
	// UpsertExchangeRate writes or refreshes one weekly rate.
	UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// BulkUpsertExchangeRates writes a rate sheet, skipping entries with unknown currencies.
	BulkUpsertExchangeRates(ctx context.Context, req dto.BulkUpsertExchangeRatesRequest, creatorUserID string) (*domain.BulkUpsertResult, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
