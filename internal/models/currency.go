package models

import "database/sql"

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID    int64          `db:"id"`
	CurrencyCode  string         `db:"code"`
	Name          string         `db:"name"`
	Symbol        sql.NullString `db:"symbol"`
	DecimalPlaces int            `db:"decimal_places"`
	Country       sql.NullString `db:"country"`
	IsBase        bool           `db:"is_base"`
	IsActive      bool           `db:"is_active"`
	SortOrder     int            `db:"sort_order"`
	AuditFields
}
