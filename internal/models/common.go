package models

import "time"

// AuditFields mirrors the audit columns shared by master and ledger tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"updated_at"`
	LastUpdatedBy string    `db:"updated_by"`
}
