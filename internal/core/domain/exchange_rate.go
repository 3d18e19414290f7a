package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource is the provenance tag of a rate record.
type RateSource string

const (
	SourceBankIndonesia RateSource = "BI"      // central-bank reference
	SourceBCA           RateSource = "BCA"     // bank counter rate
	SourceMandiri       RateSource = "MANDIRI" // bank counter rate
	SourceManual        RateSource = "MANUAL"
	SourceAPI           RateSource = "API"
)

// RateSources lists every valid source.
var RateSources = []RateSource{SourceBankIndonesia, SourceBCA, SourceMandiri, SourceManual, SourceAPI}

// Valid reports whether s is one of the known sources.
func (s RateSource) Valid() bool {
	for _, src := range RateSources {
		if s == src {
			return true
		}
	}
	return false
}

// ExchangeRate is one weekly rate record for a directed currency pair and source.
// At most one record exists per (from, to, week, year, source).
type ExchangeRate struct {
	ExchangeRateID   int64            `json:"exchangeRateID"`
	FromCurrencyID   int64            `json:"fromCurrencyID"`
	FromCurrencyCode string           `json:"fromCurrencyCode"`
	FromCurrencyName string           `json:"fromCurrencyName"`
	ToCurrencyID     int64            `json:"toCurrencyID"`
	ToCurrencyCode   string           `json:"toCurrencyCode"`
	ToCurrencyName   string           `json:"toCurrencyName"`
	Rate             decimal.Decimal  `json:"rate"`
	RateBuy          *decimal.Decimal `json:"rateBuy"`
	RateSell         *decimal.Decimal `json:"rateSell"`
	Source           RateSource       `json:"source"`
	SourceReference  *string          `json:"sourceReference"`
	Notes            *string          `json:"notes"`
	Week             WeekWindow       `json:"week"`
	// IsCurrent is derived on read: the week window contains today.
	IsCurrent bool `json:"isCurrent"`
	AuditFields
}

// ExchangeRateHistory is a rate record with the rate stored for the same pair and
// source in the calendar week just before it. PrevRate is nil when that week has
// no record.
type ExchangeRateHistory struct {
	ExchangeRate
	PrevRate      *decimal.Decimal `json:"prevRate"`
	ChangePercent *decimal.Decimal `json:"changePercent"`
}

// RateHistoryFilter narrows a history listing; every field is optional.
type RateHistoryFilter struct {
	FromCurrencyCode *string
	ToCurrencyCode   *string
	Source           *RateSource
	Limit            int
}

// RateEntry is one line of a rate sheet submitted for upsert.
type RateEntry struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	Rate             decimal.Decimal
	RateBuy          *decimal.Decimal
	RateSell         *decimal.Decimal
	SourceReference  *string
	Notes            *string
}

// SkippedRate records why a bulk entry was not written.
type SkippedRate struct {
	Index            int    `json:"index"`
	FromCurrencyCode string `json:"fromCurrency"`
	ToCurrencyCode   string `json:"toCurrency"`
	Reason           string `json:"reason"`
}

// BulkUpsertResult reports a best-effort batch write.
type BulkUpsertResult struct {
	Count   int            `json:"count"`
	Week    WeekWindow     `json:"week"`
	Source  RateSource     `json:"source"`
	Stored  []ExchangeRate `json:"rates"`
	Skipped []SkippedRate  `json:"skipped"`
}

// ResolvedRate is the outcome of a rate resolution.
type ResolvedRate struct {
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	Rate             decimal.Decimal `json:"rate"`
	Source           RateSource      `json:"source,omitempty"`
	AsOf             time.Time       `json:"date"`
	// Inverse is set when the rate was derived as 1/r from the opposite pair.
	Inverse bool `json:"inverse"`
	// ExchangeRateID is the record the rate came from; zero for same-currency identity.
	ExchangeRateID int64 `json:"exchangeRateID,omitempty"`
}

// ConversionResult is a converted amount plus the exact rate used.
type ConversionResult struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	FromCurrencyCode string          `json:"fromCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	ToCurrencyCode   string          `json:"toCurrency"`
	RateUsed         decimal.Decimal `json:"rateUsed"`
	Source           RateSource      `json:"source,omitempty"`
	AsOf             time.Time       `json:"date"`
	Inverse          bool            `json:"inverse"`
}
