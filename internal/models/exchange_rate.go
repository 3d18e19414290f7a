package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of exchange_rates joined with both currency codes.
type ExchangeRate struct {
	ExchangeRateID   int64               `db:"id"`
	FromCurrencyID   int64               `db:"from_currency_id"`
	FromCurrencyCode string              `db:"from_currency"`
	FromCurrencyName string              `db:"from_currency_name"`
	ToCurrencyID     int64               `db:"to_currency_id"`
	ToCurrencyCode   string              `db:"to_currency"`
	ToCurrencyName   string              `db:"to_currency_name"`
	Rate             decimal.Decimal     `db:"rate"`
	RateBuy          decimal.NullDecimal `db:"rate_buy"`
	RateSell         decimal.NullDecimal `db:"rate_sell"`
	Source           string              `db:"source"`
	SourceReference  sql.NullString      `db:"source_reference"`
	WeekNumber       int                 `db:"week_number"`
	Year             int                 `db:"year"`
	ValidFrom        time.Time           `db:"valid_from"`
	ValidTo          time.Time           `db:"valid_to"`
	Notes            sql.NullString      `db:"notes"`
	IsCurrent        bool                `db:"is_current"`
	AuditFields
}

// ExchangeRateHistory adds the rate stored for the calendar week before.
type ExchangeRateHistory struct {
	ExchangeRate
	PrevRate decimal.NullDecimal `db:"prev_rate"`
}
