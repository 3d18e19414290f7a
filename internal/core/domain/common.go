package domain

import "time"

// AuditFields records who wrote an entity and when. CreatedBy and
// LastUpdatedBy hold the bearer token subject of the writer; a rate that is
// re-submitted for the same week keeps CreatedBy and moves LastUpdatedBy.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
