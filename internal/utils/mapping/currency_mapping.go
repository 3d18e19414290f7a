package mapping

import (
	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:    d.CurrencyID,
		CurrencyCode:  d.CurrencyCode,
		Name:          d.Name,
		Symbol:        nullString(d.Symbol),
		DecimalPlaces: d.DecimalPlaces,
		Country:       nullString(d.Country),
		IsBase:        d.IsBase,
		IsActive:      d.IsActive,
		SortOrder:     d.SortOrder,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:    m.CurrencyID,
		CurrencyCode:  m.CurrencyCode,
		Name:          m.Name,
		Symbol:        stringPtr(m.Symbol),
		DecimalPlaces: m.DecimalPlaces,
		Country:       stringPtr(m.Country),
		IsBase:        m.IsBase,
		IsActive:      m.IsActive,
		SortOrder:     m.SortOrder,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
