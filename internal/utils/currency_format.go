package utils

import (
	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RoundToCurrency rounds half away from zero to the currency's decimal places.
// Example: 12.3456 in USD (2 places) is 12.35, in IDR (0 places) is 12.
func RoundToCurrency(amount decimal.Decimal, currency domain.Currency) decimal.Decimal {
	return amount.Round(int32(currency.DecimalPlaces))
}

// FormatWithCurrencyPrecision formats an amount with the precision of a given currency,
// keeping trailing zeros so "12.50" stays "12.50".
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(int32(currency.DecimalPlaces))
}
