package utils

import (
	"testing"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundToCurrency(t *testing.T) {
	usd := domain.Currency{CurrencyCode: "USD", DecimalPlaces: 2}
	idr := domain.Currency{CurrencyCode: "IDR", DecimalPlaces: 0}

	tests := []struct {
		name     string
		amount   string
		currency domain.Currency
		want     string
	}{
		{"usd rounds half up", "12.345", usd, "12.35"},
		{"usd keeps exact", "12.3", usd, "12.3"},
		{"idr drops fraction", "1580000.4", idr, "1580000"},
		{"idr rounds half away from zero", "1580000.5", idr, "1580001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundToCurrency(decimal.RequireFromString(tt.amount), tt.currency)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatWithCurrencyPrecision(t *testing.T) {
	usd := domain.Currency{CurrencyCode: "USD", DecimalPlaces: 2}
	assert.Equal(t, "12.50", FormatWithCurrencyPrecision(decimal.RequireFromString("12.5"), usd))
	assert.Equal(t, "0.01", FormatWithCurrencyPrecision(decimal.RequireFromString("0.006"), usd))
}
