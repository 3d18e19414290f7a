package dto

import (
	"time"

	"github.com/SscSPs/freight_desk/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode  string  `json:"currencyCode" binding:"required,currencycode"`
	Name          string  `json:"name" binding:"required"`
	Symbol        *string `json:"symbol"`
	DecimalPlaces *int    `json:"decimalPlaces" binding:"omitempty,min=0,max=8"`
	Country       *string `json:"country"`
	IsBase        bool    `json:"isBase"`
	SortOrder     int     `json:"sortOrder"`
}

// SetCurrencyActiveRequest toggles a currency's active flag.
type SetCurrencyActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string    `json:"currencyCode"`
	Name          string    `json:"name"`
	Symbol        *string   `json:"symbol"`
	DecimalPlaces int       `json:"decimalPlaces"`
	Country       *string   `json:"country"`
	IsBase        bool      `json:"isBase"`
	IsActive      bool      `json:"isActive"`
	SortOrder     int       `json:"sortOrder"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		DecimalPlaces: curr.DecimalPlaces,
		Country:       curr.Country,
		IsBase:        curr.IsBase,
		IsActive:      curr.IsActive,
		SortOrder:     curr.SortOrder,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
