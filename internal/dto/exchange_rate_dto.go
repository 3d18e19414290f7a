package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateEntryRequest is one rate line, shared by single and bulk writes.
type RateEntryRequest struct {
	FromCurrencyCode string           `json:"fromCurrency" binding:"required"`
	ToCurrencyCode   string           `json:"toCurrency" binding:"required"`
	Rate             decimal.Decimal  `json:"rate" binding:"required"`
	RateBuy          *decimal.Decimal `json:"rateBuy"`
	RateSell         *decimal.Decimal `json:"rateSell"`
	SourceReference  *string          `json:"sourceReference"`
	Notes            *string          `json:"notes"`
}

// UpsertExchangeRateRequest writes one weekly rate. WeekStart may be any date
// inside the target week; today's week is used when it is empty.
type UpsertExchangeRateRequest struct {
	RateEntryRequest
	Source    domain.RateSource `json:"source" binding:"required,ratesource"`
	WeekStart *string           `json:"weekStart"`
}

// BulkUpsertExchangeRatesRequest writes a rate sheet for one week and source.
type BulkUpsertExchangeRatesRequest struct {
	Rates     []RateEntryRequest `json:"rates" binding:"required,min=1,dive"`
	Source    domain.RateSource  `json:"source" binding:"required,ratesource"`
	WeekStart *string            `json:"weekStart"`
}

// ConvertRequest converts an amount between two currencies.
type ConvertRequest struct {
	Amount           decimal.Decimal    `json:"amount" binding:"required"`
	FromCurrencyCode string             `json:"from" binding:"required"`
	ToCurrencyCode   string             `json:"to" binding:"required"`
	Source           *domain.RateSource `json:"source" binding:"omitempty,ratesource"`
	Date             *string            `json:"date"`
}

// RateHistoryQuery binds the history listing query string.
type RateHistoryQuery struct {
	FromCurrency *string `form:"from_currency"`
	ToCurrency   *string `form:"to_currency"`
	Source       *string `form:"source" binding:"omitempty,ratesource"`
	Limit        int     `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// ResolveRateQuery binds the rate lookup query string.
type ResolveRateQuery struct {
	From   string  `form:"from" binding:"required"`
	To     string  `form:"to" binding:"required"`
	Source *string `form:"source" binding:"omitempty,ratesource"`
	Date   *string `form:"date"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID   int64            `json:"exchangeRateID"`
	FromCurrencyCode string           `json:"fromCurrency"`
	FromCurrencyName string           `json:"fromCurrencyName"`
	ToCurrencyCode   string           `json:"toCurrency"`
	ToCurrencyName   string           `json:"toCurrencyName"`
	Rate             decimal.Decimal  `json:"rate"`
	RateBuy          *decimal.Decimal `json:"rateBuy"`
	RateSell         *decimal.Decimal `json:"rateSell"`
	Source           string           `json:"source"`
	SourceReference  *string          `json:"sourceReference"`
	WeekNumber       int              `json:"weekNumber"`
	Year             int              `json:"year"`
	ValidFrom        string           `json:"validFrom"`
	ValidTo          string           `json:"validTo"`
	IsCurrent        bool             `json:"isCurrent"`
	Notes            *string          `json:"notes"`
	CreatedBy        string           `json:"createdBy"`
	CreatedAt        time.Time        `json:"createdAt"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
}

// ExchangeRateHistoryResponse adds the week-over-week change.
type ExchangeRateHistoryResponse struct {
	ExchangeRateResponse
	PrevRate      *decimal.Decimal `json:"prevRate"`
	ChangePercent *decimal.Decimal `json:"changePercent"`
}

// WeekResponse describes a week window.
type WeekResponse struct {
	WeekNumber int    `json:"weekNumber"`
	Year       int    `json:"year"`
	WeekStart  string `json:"weekStart"`
	WeekEnd    string `json:"weekEnd"`
}

// BulkUpsertResponse reports a bulk write.
type BulkUpsertResponse struct {
	Message   string                 `json:"message"`
	Count     int                    `json:"count"`
	Submitted int                    `json:"submitted"`
	Source    string                 `json:"source"`
	Week      WeekResponse           `json:"week"`
	Rates     []ExchangeRateResponse `json:"rates"`
	Skipped   []domain.SkippedRate   `json:"skipped"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID:   rate.ExchangeRateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		FromCurrencyName: rate.FromCurrencyName,
		ToCurrencyCode:   rate.ToCurrencyCode,
		ToCurrencyName:   rate.ToCurrencyName,
		Rate:             rate.Rate,
		RateBuy:          rate.RateBuy,
		RateSell:         rate.RateSell,
		Source:           string(rate.Source),
		SourceReference:  rate.SourceReference,
		WeekNumber:       rate.Week.Number,
		Year:             rate.Week.Year,
		ValidFrom:        rate.Week.Start.Format(domain.DateLayout),
		ValidTo:          rate.Week.End.Format(domain.DateLayout),
		IsCurrent:        rate.IsCurrent,
		Notes:            rate.Notes,
		CreatedBy:        rate.CreatedBy,
		CreatedAt:        rate.CreatedAt,
		LastUpdatedAt:    rate.LastUpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToListExchangeRateHistoryResponse converts history rows to response DTOs.
func ToListExchangeRateHistoryResponse(rows []domain.ExchangeRateHistory) []ExchangeRateHistoryResponse {
	responses := make([]ExchangeRateHistoryResponse, len(rows))
	for i := range rows {
		responses[i] = ExchangeRateHistoryResponse{
			ExchangeRateResponse: ToExchangeRateResponse(&rows[i].ExchangeRate),
			PrevRate:             rows[i].PrevRate,
			ChangePercent:        rows[i].ChangePercent,
		}
	}
	return responses
}

// ToWeekResponse converts a week window.
func ToWeekResponse(w domain.WeekWindow) WeekResponse {
	return WeekResponse{
		WeekNumber: w.Number,
		Year:       w.Year,
		WeekStart:  w.Start.Format(domain.DateLayout),
		WeekEnd:    w.End.Format(domain.DateLayout),
	}
}

// ResolvedRateResponse reports the outcome of a rate lookup.
type ResolvedRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrency"`
	ToCurrencyCode   string          `json:"toCurrency"`
	Rate             decimal.Decimal `json:"rate"`
	Source           string          `json:"source,omitempty"`
	Date             string          `json:"date"`
	Inverse          bool            `json:"inverse"`
	ExchangeRateID   int64           `json:"exchangeRateID,omitempty"`
}

// ConversionResponse reports a converted amount and the exact rate applied.
type ConversionResponse struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	FromCurrencyCode string          `json:"fromCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	ToCurrencyCode   string          `json:"toCurrency"`
	RateUsed         decimal.Decimal `json:"rateUsed"`
	Source           string          `json:"source,omitempty"`
	Date             string          `json:"date"`
	Inverse          bool            `json:"inverse"`
}

// ToResolvedRateResponse converts a resolution result.
func ToResolvedRateResponse(r *domain.ResolvedRate) ResolvedRateResponse {
	return ResolvedRateResponse{
		FromCurrencyCode: r.FromCurrencyCode,
		ToCurrencyCode:   r.ToCurrencyCode,
		Rate:             r.Rate,
		Source:           string(r.Source),
		Date:             r.AsOf.Format(domain.DateLayout),
		Inverse:          r.Inverse,
		ExchangeRateID:   r.ExchangeRateID,
	}
}

// ToConversionResponse converts a conversion result.
func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		OriginalAmount:   r.OriginalAmount,
		FromCurrencyCode: r.FromCurrencyCode,
		ConvertedAmount:  r.ConvertedAmount,
		ToCurrencyCode:   r.ToCurrencyCode,
		RateUsed:         r.RateUsed,
		Source:           string(r.Source),
		Date:             r.AsOf.Format(domain.DateLayout),
		Inverse:          r.Inverse,
	}
}

// ToBulkUpsertResponse converts a bulk write result.
func ToBulkUpsertResponse(r *domain.BulkUpsertResult, submitted int) BulkUpsertResponse {
	return BulkUpsertResponse{
		Message:   fmt.Sprintf("%d exchange rates saved", r.Count),
		Count:     r.Count,
		Submitted: submitted,
		Source:    string(r.Source),
		Week:      ToWeekResponse(r.Week),
		Rates:     ToListExchangeRateResponse(r.Stored),
		Skipped:   r.Skipped,
	}
}
