package mapping

import (
	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   d.ExchangeRateID,
		FromCurrencyID:   d.FromCurrencyID,
		FromCurrencyCode: d.FromCurrencyCode,
		FromCurrencyName: d.FromCurrencyName,
		ToCurrencyID:     d.ToCurrencyID,
		ToCurrencyCode:   d.ToCurrencyCode,
		ToCurrencyName:   d.ToCurrencyName,
		Rate:             d.Rate,
		RateBuy:          nullDecimal(d.RateBuy),
		RateSell:         nullDecimal(d.RateSell),
		Source:           string(d.Source),
		SourceReference:  nullString(d.SourceReference),
		WeekNumber:       d.Week.Number,
		Year:             d.Week.Year,
		ValidFrom:        d.Week.Start,
		ValidTo:          d.Week.End,
		Notes:            nullString(d.Notes),
		IsCurrent:        d.IsCurrent,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   m.ExchangeRateID,
		FromCurrencyID:   m.FromCurrencyID,
		FromCurrencyCode: m.FromCurrencyCode,
		FromCurrencyName: m.FromCurrencyName,
		ToCurrencyID:     m.ToCurrencyID,
		ToCurrencyCode:   m.ToCurrencyCode,
		ToCurrencyName:   m.ToCurrencyName,
		Rate:             m.Rate,
		RateBuy:          decimalPtr(m.RateBuy),
		RateSell:         decimalPtr(m.RateSell),
		Source:           domain.RateSource(m.Source),
		SourceReference:  stringPtr(m.SourceReference),
		Notes:            stringPtr(m.Notes),
		Week: domain.WeekWindow{
			Year:   m.Year,
			Number: m.WeekNumber,
			Start:  domain.DateOf(m.ValidFrom),
			End:    domain.DateOf(m.ValidTo),
		},
		IsCurrent:   m.IsCurrent,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExchangeRateHistory converts a history row and derives the change in percent.
func ToDomainExchangeRateHistory(m models.ExchangeRateHistory) domain.ExchangeRateHistory {
	h := domain.ExchangeRateHistory{
		ExchangeRate: ToDomainExchangeRate(m.ExchangeRate),
		PrevRate:     decimalPtr(m.PrevRate),
	}
	if h.PrevRate != nil && !h.PrevRate.IsZero() {
		change := h.Rate.Sub(*h.PrevRate).Div(*h.PrevRate).Mul(hundred).Round(4)
		h.ChangePercent = &change
	}
	return h
}
