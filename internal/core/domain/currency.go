package domain

// Currency represents a supported currency in the registry.
// Exactly one active currency is marked as base.
type Currency struct {
	CurrencyID    int64   `json:"currencyID"`
	CurrencyCode  string  `json:"currencyCode"` // e.g., "USD"
	Name          string  `json:"name"`         // e.g., "US Dollar"
	Symbol        *string `json:"symbol"`       // e.g., "$"
	DecimalPlaces int     `json:"decimalPlaces"`
	Country       *string `json:"country"`
	IsBase        bool    `json:"isBase"`
	IsActive      bool    `json:"isActive"`
	SortOrder     int     `json:"sortOrder"`
	AuditFields
}
