package models

import "database/sql"

// Port is a row of the ports table.
type Port struct {
	PortID      int64          `db:"id"`
	Code        string         `db:"code"`
	Name        string         `db:"name"`
	City        sql.NullString `db:"city"`
	Country     sql.NullString `db:"country"`
	CountryCode sql.NullString `db:"country_code"`
	PortType    string         `db:"port_type"`
	Region      sql.NullString `db:"region"`
	IsActive    bool           `db:"is_active"`
}

// Customer is a row of the customers table.
type Customer struct {
	CustomerID    int64          `db:"id"`
	Code          string         `db:"code"`
	Name          string         `db:"name"`
	Address       sql.NullString `db:"address"`
	City          sql.NullString `db:"city"`
	Country       sql.NullString `db:"country"`
	Phone         sql.NullString `db:"phone"`
	Email         sql.NullString `db:"email"`
	ContactPerson sql.NullString `db:"contact_person"`
	PaymentTerms  int            `db:"payment_terms"`
	IsActive      bool           `db:"is_active"`
	Notes         sql.NullString `db:"notes"`
	AuditFields
}
