package repositories

import (
	"context"

	"github.com/SscSPs/freight_desk/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code, active or not.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// FindBaseCurrency retrieves the currency marked as base.
	FindBaseCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves currencies ordered by sort order, optionally active only.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency. When the currency is base, the
	// previous base is cleared in the same transaction.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// SetCurrencyActive toggles the active flag.
	SetCurrencyActive(ctx context.Context, currencyCode string, active bool, userID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
